package entity

// Line - three slot indexes that win when they hold the same mark.
type Line [3]int

// OutcomeKind - what the board says about the game.
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

// WinLines - rows, then columns, then diagonals. Evaluate relies on this order.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
	Line   Line
}

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// IsFinal - a win or a draw ends the game.
func (that Outcome) IsFinal() bool {
	return that.Kind == OutcomeWin || that.Kind == OutcomeDraw
}

// Message - the text shown when the game ends, empty while it goes on.
func (that Outcome) Message() string {
	switch that.Kind {
	case OutcomeWin:
		return that.Winner.String() + " wins!"
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return ""
	}
}

// Evaluate - checks the board for a win or a draw.
// The first winning line in WinLines order is reported, even if the board has several.
func Evaluate(board Board) Outcome {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Kind: OutcomeWin, Winner: a, Line: line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Kind: OutcomeNone}
	}

	return Outcome{Kind: OutcomeDraw}
}

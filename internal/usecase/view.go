package usecase

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	SoundClick = "click"
	SoundWin   = "win"
)

// View - everything a screen needs to draw the game after a change.
type View struct {
	Board     entity.Board           `json:"board"`
	Current   entity.Mark            `json:"current"`
	GameOver  bool                   `json:"gameOver"`
	CPUMode   bool                   `json:"cpuMode"`
	Disabled  [entity.BoardSize]bool `json:"disabled"`
	Outcome   string                 `json:"outcome"`
	Winner    entity.Mark            `json:"winner,omitempty"`
	WinLine   []int                  `json:"winLine,omitempty"`
	Message   string                 `json:"message,omitempty"`
	ModeLabel string                 `json:"modeLabel"`
	Sounds    []string               `json:"sounds,omitempty"`
	Accepted  bool                   `json:"accepted"`
}

func newView(state entity.GameState, accepted bool, sounds ...string) View {
	outcome := entity.Evaluate(state.Board)

	view := View{
		Board:     state.Board,
		Current:   state.Current,
		GameOver:  state.GameOver,
		CPUMode:   state.CPUMode,
		Outcome:   outcome.Kind.String(),
		ModeLabel: modeLabel(state.CPUMode),
		Sounds:    sounds,
		Accepted:  accepted,
	}

	// a cell is disabled when it is taken or the game is over
	for i, cell := range state.Board {
		view.Disabled[i] = cell != entity.Empty || state.GameOver
	}

	if outcome.Kind == entity.OutcomeWin {
		view.Winner = outcome.Winner
		view.WinLine = outcome.Line[:]
	}

	if state.GameOver {
		view.Message = outcome.Message()
	}

	return view
}

func modeLabel(cpuMode bool) string {
	if cpuMode {
		return "CPU Mode: ON"
	}

	return "CPU Mode: OFF"
}

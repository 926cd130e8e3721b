package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

// BoardSize - number of slots on the board, row-major from top-left.
const BoardSize = 9

type Board [BoardSize]Mark

// GameState - the whole game, including the opponent mode. It is the only persisted entity.
type GameState struct {
	Board    Board `json:"board"`
	Current  Mark  `json:"current"`
	GameOver bool  `json:"gameOver"`
	CPUMode  bool  `json:"cpuMode"`
}

// NewGameState - returns a fresh game with X to move.
func NewGameState(cpuMode bool) GameState {
	return GameState{
		Current: MarkX,
		CPUMode: cpuMode,
	}
}

// Place - puts mark into the slot at index. It is the only way a slot changes.
func (that *Board) Place(index int, mark Mark) error {
	if index < 0 || index >= len(that) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, index)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, ErrUnknownMark)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}

// IsEmpty - reports whether index is on the board and holds no mark.
func (that *Board) IsEmpty(index int) bool {
	return index >= 0 && index < len(that) && that[index] == Empty
}

// EmptyCells - indexes of all empty slots in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

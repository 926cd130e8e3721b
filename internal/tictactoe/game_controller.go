package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// ApplyMove - plays the current side's mark at cell.
// A move on a finished game, on an occupied cell or outside the board is ignored:
// the state comes back unchanged with applied set to false.
func ApplyMove(state entity.GameState, cell int) (entity.GameState, entity.Outcome, bool) {
	if err := ValidateMove(state, cell); err != nil {
		return state, entity.Evaluate(state.Board), false
	}

	next := state
	if err := next.Board.Place(cell, next.Current); err != nil {
		return state, entity.Evaluate(state.Board), false
	}

	outcome := entity.Evaluate(next.Board)
	updateGameStatus(&next, outcome)

	return next, outcome, true
}

// Reset - starts a new game, keeping only the opponent mode.
func Reset(state entity.GameState) entity.GameState {
	return entity.NewGameState(state.CPUMode)
}

// ToggleCPUMode - switches the opponent mode. Changing the mode always restarts the game.
func ToggleCPUMode(state entity.GameState) entity.GameState {
	state.CPUMode = !state.CPUMode

	return Reset(state)
}

// IsCPUTurn - reports whether the next move belongs to the computer.
func IsCPUTurn(state entity.GameState) bool {
	return state.CPUMode && !state.GameOver && state.Current == entity.MarkO
}

// ValidateMove - tells why a move would be ignored, nil when it would be applied.
func ValidateMove(state entity.GameState, cell int) error {
	if state.GameOver {
		return apperror.ErrGameFinished
	}

	if !state.Current.IsPlayer() {
		return fmt.Errorf("%w: current %w", apperror.ErrInvalidMove, entity.ErrUnknownMark)
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !state.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - ends the game or passes the turn after a move.
func updateGameStatus(state *entity.GameState, outcome entity.Outcome) {
	if outcome.IsFinal() {
		state.GameOver = true
		return
	}

	state.Current = state.Current.Opponent()
}

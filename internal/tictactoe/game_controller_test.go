package tictactoe

import (
	"math/rand/v2"
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func TestApplyMove(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGameState(false)

		// When: X plays cell 0
		next, outcome, applied := ApplyMove(game, 0)

		// Then: the mark is placed and it is O's turn
		require.True(t, applied)
		assert.Equal(t, entity.OutcomeNone, outcome.Kind)
		assert.Equal(t, entity.GameState{
			Board:   entity.Board{x, e, e, e, e, e, e, e, e},
			Current: entity.MarkO,
		}, next)

		// Then: the input state is not touched
		assert.Equal(t, entity.NewGameState(false), game)
	})

	t.Run("Move on occupied cell is a no-op", func(t *testing.T) {
		// Given: a game with X in the center and O to move
		game := entity.GameState{
			Board:   entity.Board{e, e, e, e, x, e, e, e, e},
			Current: entity.MarkO,
		}

		// When: O tries cell 4
		next, _, applied := ApplyMove(game, 4)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, game, next)
		assert.ErrorIs(t, ValidateMove(game, 4), apperror.ErrCellOccupied)
	})

	t.Run("Move after game finished is a no-op", func(t *testing.T) {
		// Given: a game X has already won
		game := entity.GameState{
			Board:    entity.Board{x, x, x, e, o, e, e, o, e},
			Current:  entity.MarkX,
			GameOver: true,
		}

		// When: someone plays a free cell
		next, outcome, applied := ApplyMove(game, 3)

		// Then: nothing changes and the outcome still reports the win
		assert.False(t, applied)
		assert.Equal(t, game, next)
		assert.Equal(t, entity.OutcomeWin, outcome.Kind)
		assert.ErrorIs(t, ValidateMove(game, 3), apperror.ErrGameFinished)
	})

	t.Run("Invalid cells are ignored", func(t *testing.T) {
		game := entity.NewGameState(false)

		for _, cell := range []int{-1, 9, 20} {
			next, _, applied := ApplyMove(game, cell)

			assert.False(t, applied)
			assert.Equal(t, game, next)
			assert.ErrorIs(t, ValidateMove(game, cell), apperror.ErrInvalidCell)
		}
	})

	t.Run("State without a player to move is rejected", func(t *testing.T) {
		// Given: a state whose current mark is empty
		game := entity.GameState{Current: entity.Empty}

		// When: a free cell is played
		next, _, applied := ApplyMove(game, 0)

		// Then: nothing changes and the reason is the unknown mark, not the turn order
		assert.False(t, applied)
		assert.Equal(t, game, next)

		err := ValidateMove(game, 0)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, entity.ErrUnknownMark)
		assert.NotErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("X wins the top row", func(t *testing.T) {
		// Given: X has 0 and 1, O has 3 and 4
		game := entity.NewGameState(false)
		for _, cell := range []int{0, 3, 1, 4} {
			var applied bool
			game, _, applied = ApplyMove(game, cell)
			require.True(t, applied)
		}

		// When: X plays 2
		game, outcome, applied := ApplyMove(game, 2)

		// Then: X wins on the first row and the game is over with X still current
		require.True(t, applied)
		assert.Equal(t, entity.Outcome{Kind: entity.OutcomeWin, Winner: entity.MarkX, Line: entity.Line{0, 1, 2}}, outcome)
		assert.True(t, game.GameOver)
		assert.Equal(t, entity.MarkX, game.Current)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a sequence that fills the board without three in a row
		game := entity.NewGameState(false)
		moves := []int{0, 1, 2, 4, 3, 5, 7, 6}
		for _, cell := range moves {
			var applied bool
			game, _, applied = ApplyMove(game, cell)
			require.True(t, applied)
			require.False(t, game.GameOver)
		}

		// When: X plays the last cell
		game, outcome, applied := ApplyMove(game, 8)

		// Then: the game ends in a draw
		require.True(t, applied)
		assert.Equal(t, entity.OutcomeDraw, outcome.Kind)
		assert.True(t, game.GameOver)
		assert.Equal(t, entity.Board{x, o, x, x, o, o, o, x, x}, game.Board)
	})
}

func TestApplyMove_CurrentAlternates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		game := entity.NewGameState(false)
		expected := entity.MarkX

		for !game.GameOver {
			free := game.Board.EmptyCells()
			require.NotEmpty(t, free)
			cell := free[rng.IntN(len(free))]

			require.Equal(t, expected, game.Current)

			var applied bool
			game, _, applied = ApplyMove(game, cell)
			require.True(t, applied)
			require.Equal(t, expected, game.Board[cell])

			if !game.GameOver {
				expected = expected.Opponent()
			}
		}

		// Then: the finishing side stays current once the game is over
		assert.Equal(t, expected, game.Current)

		frozen, _, applied := ApplyMove(game, 0)
		assert.False(t, applied)
		assert.Equal(t, game, frozen)
	}
}

func TestReset(t *testing.T) {
	t.Run("Reset keeps only the mode", func(t *testing.T) {
		// Given: a finished game in CPU mode
		game := entity.GameState{
			Board:    entity.Board{x, x, x, o, o, e, e, e, e},
			Current:  entity.MarkX,
			GameOver: true,
			CPUMode:  true,
		}

		// When: the game is reset
		fresh := Reset(game)

		// Then: the board is clean, X starts and CPU mode is still on
		assert.Equal(t, entity.NewGameState(true), fresh)
	})

	t.Run("Reset of a fresh game", func(t *testing.T) {
		assert.Equal(t, entity.NewGameState(false), Reset(entity.NewGameState(false)))
	})
}

func TestToggleCPUMode(t *testing.T) {
	// Given: a game in progress without CPU
	game := entity.GameState{
		Board:   entity.Board{x, o, e, e, e, e, e, e, e},
		Current: entity.MarkX,
	}

	// When: the mode is toggled
	toggled := ToggleCPUMode(game)

	// Then: CPU mode is on and the board restarted
	assert.Equal(t, entity.NewGameState(true), toggled)

	// When: toggled again
	back := ToggleCPUMode(toggled)

	// Then: CPU mode is off and the board is fresh
	assert.Equal(t, entity.NewGameState(false), back)
}

func TestIsCPUTurn(t *testing.T) {
	assert.True(t, IsCPUTurn(entity.GameState{Current: entity.MarkO, CPUMode: true}))
	assert.False(t, IsCPUTurn(entity.GameState{Current: entity.MarkX, CPUMode: true}))
	assert.False(t, IsCPUTurn(entity.GameState{Current: entity.MarkO}))
	assert.False(t, IsCPUTurn(entity.GameState{Current: entity.MarkO, CPUMode: true, GameOver: true}))
}

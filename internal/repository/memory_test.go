package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()
	fallback := entity.NewGameState(false)

	t.Run("Load without record returns fallback", func(t *testing.T) {
		repo := NewMemoryGameRepository("ticTacToe")

		state, err := repo.Load(ctx, fallback)

		require.ErrorIs(t, err, ErrStateNotFound)
		assert.Equal(t, fallback, state)
	})

	t.Run("Save then Load", func(t *testing.T) {
		// Given: a saved game in progress
		repo := NewMemoryGameRepository("ticTacToe")
		saved := entity.GameState{
			Board:   entity.Board{entity.MarkX, entity.Empty, entity.Empty, entity.Empty, entity.MarkO},
			Current: entity.MarkX,
			CPUMode: true,
		}
		require.NoError(t, repo.Save(ctx, saved))

		// When: the state is loaded
		state, err := repo.Load(ctx, fallback)

		// Then: the saved state comes back
		require.NoError(t, err)
		assert.Equal(t, saved, state)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		repo := NewMemoryGameRepository("ticTacToe")
		require.NoError(t, repo.Save(ctx, entity.GameState{Current: entity.MarkO}))
		require.NoError(t, repo.Save(ctx, entity.NewGameState(true)))

		state, err := repo.Load(ctx, fallback)

		require.NoError(t, err)
		assert.Equal(t, entity.NewGameState(true), state)
	})

	t.Run("Malformed record returns fallback", func(t *testing.T) {
		// Given: a broken record under the key
		repo := NewMemoryGameRepository("ticTacToe")
		repo.(*memoryGame).records["ticTacToe"] = []byte(`{"board":[1,2,3]}`)

		// When: the state is loaded
		state, err := repo.Load(ctx, fallback)

		// Then: the fallback is used
		require.ErrorIs(t, err, ErrMalformedState)
		assert.Equal(t, fallback, state)
	})
	t.Run("Board stored as a byte string returns fallback", func(t *testing.T) {
		// Given: a record whose board is a base64 string of mark values
		repo := NewMemoryGameRepository("ticTacToe")
		repo.(*memoryGame).records["ticTacToe"] = []byte(`{"board":"AQIAAQIAAQIA","current":"X","gameOver":false,"cpuMode":false}`)

		// When: the state is loaded
		state, err := repo.Load(ctx, fallback)

		// Then: the record is rejected and the fallback is used
		require.ErrorIs(t, err, ErrMalformedState)
		assert.Equal(t, fallback, state)
	})
}

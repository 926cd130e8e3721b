package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// memoryGame - process-local store with the same record format as Redis. Nothing survives a restart.
type memoryGame struct {
	mu      sync.RWMutex
	key     string
	records map[string][]byte
}

func NewMemoryGameRepository(key string) GameRepository {
	return &memoryGame{
		key:     key,
		records: make(map[string][]byte),
	}
}

func (that *memoryGame) Save(_ context.Context, state entity.GameState) error {
	stateJSON, err := encodeState(state)
	if err != nil {
		return err
	}

	that.mu.Lock()
	that.records[that.key] = stateJSON
	that.mu.Unlock()

	return nil
}

func (that *memoryGame) Load(_ context.Context, fallback entity.GameState) (entity.GameState, error) {
	that.mu.RLock()
	stateJSON, ok := that.records[that.key]
	that.mu.RUnlock()

	if !ok {
		return fallback, ErrStateNotFound
	}

	state, err := decodeState(stateJSON)
	if err != nil {
		return fallback, err
	}

	return state, nil
}

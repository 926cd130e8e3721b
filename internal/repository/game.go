package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var ErrStateNotFound = errors.New("game state not found")

// GameRepository - keeps the single game record under one fixed key.
//
// Load always returns a usable state: when the record is missing, malformed or
// unreadable it returns fallback together with an error that says why.
type GameRepository interface {
	Save(ctx context.Context, state entity.GameState) error
	Load(ctx context.Context, fallback entity.GameState) (entity.GameState, error)
}

type dbGame struct {
	client *redis.Client
	key    string
}

func NewGameRepository(client *redis.Client, key string) GameRepository {
	return &dbGame{
		client: client,
		key:    key,
	}
}

func (that *dbGame) Save(ctx context.Context, state entity.GameState) error {
	stateJSON, err := encodeState(state)
	if err != nil {
		return err
	}

	err = that.client.Set(ctx, that.key, stateJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game state: %w", err)
	}

	return nil
}

func (that *dbGame) Load(ctx context.Context, fallback entity.GameState) (entity.GameState, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()

	if errors.Is(err, redis.Nil) {
		return fallback, ErrStateNotFound
	}

	if err != nil {
		return fallback, fmt.Errorf("failed to get game state: %w", err)
	}

	state, err := decodeState(response)
	if err != nil {
		return fallback, err
	}

	return state, nil
}

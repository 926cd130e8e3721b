package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/validator"
)

var ErrMalformedState = errors.New("malformed game state")

// stateRecord - the stored shape of a game. Board slots stay raw until each one
// is decoded as a mark, so only a JSON array of exactly 9 slots is accepted.
type stateRecord struct {
	Board    []json.RawMessage `json:"board" validate:"len=9"`
	Current  entity.Mark       `json:"current" validate:"player_mark"`
	GameOver bool              `json:"gameOver"`
	CPUMode  bool              `json:"cpuMode"`
}

func encodeState(state entity.GameState) ([]byte, error) {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game state: %w", err)
	}

	return stateJSON, nil
}

func decodeState(data []byte) (entity.GameState, error) {
	var record stateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return entity.GameState{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	if err := validator.GetValidator().Struct(record); err != nil {
		return entity.GameState{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	state := entity.GameState{
		Current:  record.Current,
		GameOver: record.GameOver,
		CPUMode:  record.CPUMode,
	}

	for i, slot := range record.Board {
		if err := json.Unmarshal(slot, &state.Board[i]); err != nil {
			return entity.GameState{}, fmt.Errorf("%w: slot %d: %w", ErrMalformedState, i, err)
		}
	}

	return state, nil
}

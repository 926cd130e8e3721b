package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mark - the content of a single board slot or the side whose turn it is.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

var ErrUnknownMark = errors.New("unknown mark")

var jsonNull = []byte("null")

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// IsPlayer - reports whether the mark belongs to one of the two sides.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// Opponent - returns the other side. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// ParseMark - parses "X" or "O". Any other text is rejected.
func ParseMark(text string) (Mark, error) {
	switch text {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}
}

// MarshalJSON - an empty slot is written as null, a player mark as "X" or "O".
func (that Mark) MarshalJSON() ([]byte, error) {
	if that == Empty {
		return jsonNull, nil
	}

	if !that.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMark, uint8(that))
	}

	return json.Marshal(that.String())
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	if string(data) == string(jsonNull) {
		*that = Empty
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownMark, data)
	}

	mark, err := ParseMark(text)
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

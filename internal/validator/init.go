// Package validator holds the shared validator used to check stored records.
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// player_mark accepts X or O, never an empty slot
	if err := validate.RegisterValidation("player_mark", isPlayerMark); err != nil {
		panic(err)
	}
}

// GetValidator - the shared instance with the player_mark rule registered.
func GetValidator() *validator.Validate {
	return validate
}

func isPlayerMark(fl validator.FieldLevel) bool {
	mark, ok := fl.Field().Interface().(entity.Mark)

	return ok && mark.IsPlayer()
}

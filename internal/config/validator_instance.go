package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/colormix/internal/palette"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
			return palette.InRange(fl.Field().Float())
		})

		validateInst = v
	})

	return validateInst
}

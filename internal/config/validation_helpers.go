package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/colormix/pkg/errors"
)

// ValidateConfig checks every field constraint on cfg.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into colormix validation errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return apperrors.NewValidationError(field, describe(ve), err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hexcolor":
		return fmt.Sprintf("%v is not a hex colour", fe.Value())
	case "channel":
		return "must be between 0 and 255"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName maps Config.Swatch.Width to swatch.width.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

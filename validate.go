package panzoom

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Shared validator for config and script structs.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		validatorInst.RegisterStructValidation(validateScriptStep, scriptStep{})
	})
	return validatorInst
}

// validateStruct validates v against its `validate` tags.
func validateStruct(v any) error {
	return structValidator().Struct(v)
}

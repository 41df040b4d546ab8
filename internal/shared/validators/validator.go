package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagGlob checks that a string compiles as a '/'-separated glob pattern.
const TagGlob = "glob"

// New creates a validator with the project's custom tags registered.
func New() *Validate {
	validate := validator.New()
	// registration only fails for an empty tag or nil func
	_ = validate.RegisterValidation(TagGlob, validateGlob)
	return validate
}

func validateGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String(), '/')
	return err == nil
}

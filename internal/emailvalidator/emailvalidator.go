package emailvalidator

import (
	"errors"

	structValidator "github.com/go-playground/validator/v10"
)

const emailTag = "required,email"

// EmailValidatorAdapter implements interfaces.EmailValidator using the
// go-playground validator's email rule.
type EmailValidatorAdapter struct {
	validator *structValidator.Validate
}

// NewEmailValidatorAdapter creates an adapter around an existing validator.
func NewEmailValidatorAdapter(validator *structValidator.Validate) *EmailValidatorAdapter {
	return &EmailValidatorAdapter{validator: validator}
}

// IsValid reports whether email is a syntactically valid address. A
// rejected address is not an error; an error is returned only when the
// validator itself could not run.
func (a *EmailValidatorAdapter) IsValid(email string) (bool, error) {
	err := a.validator.Var(email, emailTag)
	if err == nil {
		return true, nil
	}

	var validationErrors structValidator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return false, nil
	}
	return false, err
}

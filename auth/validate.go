package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCredentials checks the login form before anything is sent
func ValidateCredentials(c Credentials) error {
	return humanize(validate.Struct(c))
}

// ValidateRegistration checks the registration form before anything is sent
func ValidateRegistration(r Registration) error {
	return humanize(validate.Struct(r))
}

// humanize turns the first validator failure into a form-friendly message
func humanize(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}

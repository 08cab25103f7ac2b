// Package validator wraps go-playground/validator with standardized error
// formatting and a few domain tags:
//
//   - decimal: the field is a base-10 decimal string ("150", "0.25")
//   - hexquantity: the field is a 0x-prefixed hexadecimal quantity
//
// The shared validator instance is built on package load and is safe for
// concurrent use.
package validator

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// errStringFormat describes a single field failure.
//
// Example: "'URL': value 'ftp://x' does not meet the requirements for the 'http_url' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = validator.RegisterValidation("decimal", isDecimal)
	_ = validator.RegisterValidation("hexquantity", isHexQuantity)
}

func isDecimal(fl gvalidator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func isHexQuantity(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}

	digits := s[2:]
	if digits == "" {
		return false
	}

	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}

	return true
}

// formatError turns go-playground validation errors into a joined error
// rooted at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(sub); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the subscription
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against the given tag expression, for
// example validator.Var(url, "required,http_url").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}

// Package validator adapts go-playground/validator to echo's Validator
// interface and shapes violations into the API's error messages.
package validator

import (
	"reflect"
	"strings"

	domainerrors "quill/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New constructs the echo validator used by every handler. Violations
// are reported under the wire name (json or query tag), not the Go
// field name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks a bound request struct. Only the first violation is
// reported, as a 400 with a human-readable message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage(messageFor(violations[0]))
	}

	return domainerrors.ErrValidationFailed.WrapMessage("request validation failed")
}

// messageFor renders a single violation the way the API reports it,
// e.g. `"title" must be at least 3 characters long`.
func messageFor(fe validator.FieldError) string {
	field := fieldName(fe)

	switch fe.Tag() {
	case "required":
		return quote(field) + " is required"
	case "email":
		return quote(field) + " must be a valid email"
	case "min":
		if fe.Kind().String() == "string" {
			return quote(field) + " must be at least " + fe.Param() + " characters long"
		}

		return quote(field) + " must be at least " + fe.Param()
	case "max":
		if fe.Kind().String() == "string" {
			return quote(field) + " must be at most " + fe.Param() + " characters long"
		}

		return quote(field) + " must be at most " + fe.Param()
	case "oneof":
		return quote(field) + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "required_without_all":
		return "at least one field must be provided"
	default:
		return quote(field) + " is invalid"
	}
}

// fieldName returns the registered wire name of the offending field.
func fieldName(fe validator.FieldError) string {
	return fe.Field()
}

func quote(field string) string {
	return "\"" + field + "\""
}

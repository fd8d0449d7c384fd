package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/velora/identity-service/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("strongpw", strongPassword); err != nil {
		panic(fmt.Sprintf("service: register strongpw validation: %v", err))
	}
	return v
}

// strongPassword requires at least one lowercase letter, one uppercase
// letter, one digit and one symbol. Length is enforced separately via min=8.
func strongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// checkInput runs structural validation and converts failures into the
// ordered field error set returned to clients. All violations are collected;
// a nil return means the input is structurally sound.
func checkInput(in any) domain.ValidationErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.ValidationErrors{{Field: "request", Message: "invalid input"}}
	}

	out := make(domain.ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, domain.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage converts a single validator failure into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "alphanum":
		return field + " must contain only letters and digits"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "strongpw":
		return field + " must contain a lowercase letter, an uppercase letter, a digit and a symbol"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

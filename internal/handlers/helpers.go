package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns a gin binding error into a caller-friendly message.
// Field-level validation failures are listed per field; anything else (bad
// JSON, wrong types) gets a generic prefix.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			parts[i] = fe.Field() + " failed on '" + fe.Tag() + "'"
		}
		return "Validation failed: " + strings.Join(parts, ", ")
	}
	return "Invalid request format: " + err.Error()
}

package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one entry of the structured validation error list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	// firstName -> First Name, leave_balance -> Leave Balance
	s = strings.ReplaceAll(s, "_", " ")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

func fieldMessage(e validator.FieldError) string {
	field := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " should be a valid email"
	default:
		return field + " is invalid"
	}
}

// MapValidationError converts validator errors from request binding into a
// single 400 AppError carrying the full list of field errors as details.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, FieldError{
				Field:   e.Field(),
				Message: fieldMessage(e),
			})
		}

		first := verrs[0]
		var base *AppError
		if first.Tag() == "required" {
			base = RequiredField(formatFieldName(first.Field()))
		} else {
			base = InvalidField(formatFieldName(first.Field()))
		}
		return base.WithDetails(fields)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

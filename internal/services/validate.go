package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct validation. Any missing required field yields
// ErrMissingFields; other failures are reported as invalid input naming the
// first offending field.
func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	for _, fe := range ves {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	fe := ves[0]
	return classed(ErrInvalidInput, "Invalid "+lowerFirst(fe.Field()))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// patch collects the non-nil pointers of a partial update into a column map.
func patch(cols map[string]*string) map[string]any {
	out := make(map[string]any, len(cols))
	for col, v := range cols {
		if v != nil {
			out[col] = *v
		}
	}
	return out
}

func trimmed(s string) string { return strings.TrimSpace(s) }

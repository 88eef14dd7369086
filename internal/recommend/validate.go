package recommend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports JSON field names, so a
// ValidationError carries the name the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Allowed enum values per field, used for validation messages.
var allowedValues = map[string]string{
	"salary_range":  "entry, growth, premium",
	"time_horizon":  "immediate, mid_term, long_term",
	"risk_appetite": "low, medium, high",
}

// Validate checks the query against the enum contract and maps the first
// violation to a typed ValidationError.
func (q *PreferenceQuery) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s is required", fe.Field()),
		}
	case "oneof":
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("invalid %s %q, must be one of: %s", fe.Field(), fe.Value(), allowedValues[fe.Field()]),
		}
	default:
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()),
		}
	}
}

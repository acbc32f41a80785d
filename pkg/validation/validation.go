package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "unipick/pkg/domain-errors"
)

// Option is implemented by closed string enums whose wire values are fixed.
type Option interface {
	IsValid() bool
}

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire (JSON) name so error sets are keyed the way
	// clients submit them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		opt, ok := fl.Field().Interface().(Option)
		if !ok {
			return false
		}
		return opt.IsValid()
	})
	return v
}

// Validate validates a struct and returns a domain validation error carrying
// every failing field, or nil.
func Validate(req any) error {
	return toDomainError(defaultValidator.Struct(req))
}

// ValidatePartial validates only the named struct fields (Go field names).
func ValidatePartial(req any, fields ...string) error {
	return toDomainError(defaultValidator.StructPartial(req, fields...))
}

// Fields validates a struct and returns the field-keyed messages, or nil when valid.
func Fields(req any) map[string]string {
	return FieldErrors(defaultValidator.Struct(req))
}

// PartialFields is Fields restricted to the named struct fields.
func PartialFields(req any, fields ...string) map[string]string {
	return FieldErrors(defaultValidator.StructPartial(req, fields...))
}

func toDomainError(err error) error {
	if err == nil {
		return nil
	}
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return dErrors.NewValidation(ErrorMessage(err), fields)
}

// FieldErrors converts a validator error into wire-name keyed messages.
// Every failing field is reported, not only the first.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fieldName(fe)
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

// ErrorMessage converts a validator error into a human-readable message
// describing the first failure.
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}
	if len(validationErrs) > 1 {
		return fmt.Sprintf("%d fields are invalid", len(validationErrs))
	}
	fe := validationErrs[0]
	return message(fieldName(fe), fe)
}

// fieldName strips dive indexes so "interests[2]" reports as "interests".
func fieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}
	if i := strings.IndexByte(field, '['); i > 0 {
		field = field[:i]
	}
	return field
}

func message(field string, fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s needs at least %s selections", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s allows at most %s selections", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "option":
		return fmt.Sprintf("%s is not a recognised option", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, strings.ToLower(fe.Param()))
	case "gtefield":
		return fmt.Sprintf("%s must not be below %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

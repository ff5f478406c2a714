// internal/app/system/inputval/inputval.go

// Package inputval validates request payload structs with
// go-playground/validator, reporting failures with the field's `label` tag so
// error messages read like the form field the caller filled in.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Struct validates v against its `validate` tags. The returned error message
// names the first offending field and is safe to surface to the caller.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errorsAs(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*target = verrs
		return true
	}
	return false
}

// TrimmedEmpty reports whether s is empty after trimming whitespace.
func TrimmedEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

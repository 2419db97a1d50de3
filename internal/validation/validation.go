// Package validation configures gin's validator and turns its errors into
// per-field messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NonFieldErrors is the key for messages that do not belong to one field
const NonFieldErrors = "non_field_errors"

var registerOnce sync.Once

// Register installs the json tag name function and the custom validators on
// gin's default validator. Calling it more than once is harmless.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		// notblank rejects strings that are empty after trimming
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.String {
				return true
			}
			return strings.TrimSpace(field.String()) != ""
		})
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// FieldErrors converts a binding error into messages keyed by json field name
func FieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	var validationErrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			key := fieldPath(fe)
			fields[key] = append(fields[key], message(fe))
		}
	case errors.As(err, &typeErr):
		key := typeErr.Field
		if key == "" {
			key = NonFieldErrors
		}
		fields[key] = append(fields[key], fmt.Sprintf("Expected %s.", describeType(typeErr.Type)))
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		fields[NonFieldErrors] = []string{"Malformed JSON body."}
	default:
		// decimal reports its own parse errors without a json type
		if strings.Contains(err.Error(), "decimal") {
			fields["price"] = []string{"A valid number is required."}
		} else {
			fields[NonFieldErrors] = []string{err.Error()}
		}
	}
	return fields
}

// fieldPath drops the top level struct name: "RecipeRequest.tags[0].name" becomes "tags[0].name"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func describeType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch {
	case t == decimalType:
		return "a number"
	case t.Kind() == reflect.String:
		return "a string"
	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Float64:
		return "a number"
	case t.Kind() == reflect.Slice:
		return "a list"
	case t.Kind() == reflect.Struct:
		return "an object"
	case t.Kind() == reflect.Bool:
		return "a boolean"
	default:
		return t.String()
	}
}

package services

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/monocle-dev/rentals/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(types.Categories, fl.Field().String())
	})
	_ = v.RegisterValidation("renttype", func(fl validator.FieldLevel) bool {
		return slices.Contains(types.RentTypes, fl.Field().String())
	})

	return v
}

// validateStruct runs the struct tags and converts failures to a ValidationError.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		name := fieldName(fe)
		out.Fields[name] = fieldMessage(name, fe)
	}

	return out
}

// validateField checks a single scalar argument against tag.
func validateField(name string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	return NewValidationError(name, fieldMessage(name, fieldErrs[0]))
}

// fieldName drops the top-level struct name from the namespace, so nested
// slice elements read as "categories[1]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", name)
	case "category":
		return fmt.Sprintf("%s must be one of: %s", name, strings.Join(types.Categories, ", "))
	case "renttype":
		return fmt.Sprintf("%s must be one of: %s", name, strings.Join(types.RentTypes, ", "))
	case "lte":
		return fmt.Sprintf("%s must not exceed %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

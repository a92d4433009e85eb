package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so errors match the payload the user edited.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return lo.Ternary(name == "", field.Name, name)
	})

	return v
}

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (e FieldError) String() string {
	if e.Param == "" {
		return fmt.Sprintf("'%s' failed '%s'", e.Field, e.Rule)
	}

	return fmt.Sprintf("'%s' failed '%s=%s'", e.Field, e.Rule, e.Param)
}

// ValidationError lists every field of an entity that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(lo.Map(e.Fields, func(f FieldError, _ int) string {
		return f.String()
	}), ", ")
}

// Validate checks entity against its validation tags. Rule violations are
// returned as *ValidationError.
func Validate(entity any) error {
	err := _validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("cannot validate entity: %w", err)
	}

	return &ValidationError{
		Fields: lo.Map(fieldErrs, func(fe validator.FieldError, _ int) FieldError {
			return FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
		}),
	}
}

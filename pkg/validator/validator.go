// Package validator wraps go-playground struct validation behind one
// shared instance and registers the custom rules request DTOs rely on.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes a single rule a request struct failed.
type FieldError struct {
	FailedField string
	Tag         string
	Param       string
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// uuid_required: the zero UUID means the caller never set the
	// field, which `required` alone cannot detect on a value type.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// ValidateStruct runs all tag rules on data and returns one entry per
// failed field, empty when the struct is valid.
func ValidateStruct(data interface{}) []*FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var failures []*FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		failures = append(failures, &FieldError{
			FailedField: fe.StructNamespace(),
			Tag:         fe.Tag(),
			Param:       fe.Param(),
		})
	}
	return failures
}

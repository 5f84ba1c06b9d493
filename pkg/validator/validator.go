package validator

import (
	"github.com/go-playground/validator/v10"

	"go-warehouse-stock/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Roles are a closed set even though they travel as plain strings
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		if role, ok := fl.Field().Interface().(model.Role); ok {
			return role.Valid()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

package validate

import (
	"github.com/go-playground/validator/v10"
)

var structValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return IsCedula(fl.Field().String())
	})
	return v
}()

// Struct validates request DTOs against their `validate` tags.
func Struct(s any) error {
	return structValidator.Struct(s)
}

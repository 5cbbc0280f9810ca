package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs validator tags over an input struct and returns a
// per-field map of Spanish messages, nil when everything passes.
func ValidateStruct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fieldErrors := make(map[string]string, len(errs))
	for _, fe := range errs {
		fieldErrors[fe.Field()] = messageFor(fe.Field(), fe)
	}
	return fieldErrors
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser al menos %s", field, fe.Param())
	case "email":
		return "Email inválido"
	case "gt":
		return fmt.Sprintf("El campo %s debe ser un número mayor a %s", field, fe.Param())
	default:
		return fmt.Sprintf("El campo %s es inválido", field)
	}
}

package bank

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the struct tags of the types built from user input.
var validate *validator.Validate

func init() {
	validate = validator.New()

	// a string that is not empty nor only made of spaces.
	if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
}

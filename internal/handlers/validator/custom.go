package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var runNameValidRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 +\-_.]*$`)

func runNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return runNameValidRegex.MatchString(val)
}

package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the validate tags on a request struct and returns the
// combined validation errors, if any.
func ValidateStruct(payload interface{}) error {
	return validate.Struct(payload)
}

package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct tags of a domain entity.
func Validate(entity any) error {
	return validate.Struct(entity)
}

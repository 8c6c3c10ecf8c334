// Package validate wraps a shared go-playground validator instance.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct validates struct fields against their `validate` tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

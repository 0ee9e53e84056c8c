package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the configured validator. Everything the checkout payload
// needs is expressible with field tags, so no struct-level rules are
// registered.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

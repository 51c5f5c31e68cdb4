package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used for all request payloads. Rules are
// presence-only on purpose: the API stores what the wire format accepts.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

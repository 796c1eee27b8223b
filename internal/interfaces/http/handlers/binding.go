package handlers

import (
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

// bindError turns a gin binding failure into a 400.
func bindError(err error) error {
	return errors.NewValidationError("invalid request body", err.Error())
}

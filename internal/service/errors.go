package service

import (
	"errors"

	"gamenight/internal/apperror"
	"gamenight/internal/repository"
)

// Domain errors shared by the services.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// translate turns repository sentinels into client-facing errors. Anything
// else is returned unchanged and ends up as an internal error.
func translate(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NewNotFound(notFoundMsg, err)
	case errors.Is(err, repository.ErrDuplicate):
		return apperror.NewConflict("already exists", err)
	default:
		return err
	}
}

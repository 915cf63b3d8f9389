package service

import (
	"errors"
	"fmt"

	"basegraph.app/planboard/internal/store"
)

// Domain failures. Handlers map these to status codes with errors.Is; the
// wrapped message carries the detail shown to clients.
var (
	// ErrUnauthorized means the caller is not a member of the workspace or
	// lacks the role the operation needs.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is a member but cannot see the resource.
	ErrForbidden  = errors.New("access denied to resource")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid request")
	// ErrConflict means the write would break a workspace invariant.
	ErrConflict = errors.New("conflict")

	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// lookupErr turns a store miss into ErrNotFound naming the entity and wraps
// anything else as an internal failure.
func lookupErr(err error, entity string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return fmt.Errorf("getting %s: %w", entity, err)
}

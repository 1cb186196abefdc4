package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/auth"
	"github.com/mmynk/dayplanner/internal/planner"
	"github.com/mmynk/dayplanner/internal/storage"
)

// errInvalid marks request values rejected by a service after validation
// (e.g. a slot ending before it starts).
var errInvalid = errors.New("invalid argument")

// toConnectError maps domain errors to Connect codes. Unknown errors are
// internal.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrProtected), errors.Is(err, storage.ErrSessionFinished):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrConflict), errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, errInvalid), errors.Is(err, planner.ErrInvalidInput),
		errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidEmail):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

package commands

import (
	"pharmashift/internal/infra"
	"pharmashift/internal/pkg/errs"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

// readErr turns a missing row into a caller-facing NotFound and marks anything else as a storage failure.
func readErr(err error, notFoundMsg string) error {
	if isNotFound(err) {
		return errs.UserWithCause(errs.ErrNotFound, err, notFoundMsg)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errs.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	case errs.Is(err, errs.ErrExpired):
		return "expired"
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

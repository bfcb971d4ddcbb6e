package errs

import (
	"errors"
	"fmt"
)

// Sentinel kinds shared by the command and query layers. Handlers map them to status codes.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrInvalidState         = errors.New("invalid state")
	ErrConflict             = errors.New("conflict")
	ErrExpired              = errors.New("expired")
	ErrPaymentMethodMissing = errors.New("payment method missing")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrValidation           = errors.New("validation failed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// UserError pairs a sentinel kind with a message that is safe to show to the caller.
// The cause, if any, stays available for logging through Unwrap.
type UserError struct {
	kind  error
	msg   string
	cause error
}

func Userf(kind error, format string, args ...any) error {
	return &UserError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func UserWithCause(kind error, cause error, msg string) error {
	return &UserError{kind: kind, msg: msg, cause: cause}
}

func (e *UserError) Error() string {
	return e.msg
}

func (e *UserError) Is(target error) bool {
	return target == e.kind
}

func (e *UserError) Unwrap() error {
	return e.cause
}

func (e *UserError) Kind() error {
	return e.kind
}

// UserMessage returns the caller-facing message of the outermost UserError, if any.
func UserMessage(err error) (string, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.msg, true
	}
	return "", false
}

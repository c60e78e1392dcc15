package api

import (
	"fmt"

	"github.com/bekendz87/droh-admin/internal/common"
)

// Error is a failed backend call, carrying a message fit for the UI.
type Error struct {
	cause   error
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap lets callers match on common.ErrBackend and the transport cause.
func (e *Error) Unwrap() []error {
	errs := []error{common.ErrBackend}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

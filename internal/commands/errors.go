package commands

import (
	"errors"
	"fmt"
	"io"

	"todoctl/internal/exitcode"
	"todoctl/internal/service"
)

// fail maps a service error to a message and exit code. Every command
// funnels its gateway failures through here so the taxonomy stays in one
// place.
func fail(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		fmt.Fprintln(errOut, "error: session expired (run: todoctl login)")
		return exitcode.AuthError
	case errors.Is(err, service.ErrForbidden):
		fmt.Fprintln(errOut, "error: admin role required")
		return exitcode.AuthError
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintln(errOut, "error: not found")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

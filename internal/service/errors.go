package service

import "errors"

// ErrUnauthorized means the credential was missing, invalid, or expired.
// The gateway clears the stored session before returning it.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden means the credential is valid but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound means the target record no longer exists.
var ErrNotFound = errors.New("not found")

// ABOUTME: Sentinel errors for store operations
// ABOUTME: Callers branch on these with errors.Is; none are fatal
package store

import "errors"

var (
	// ErrValidation means a required field was empty after trimming.
	ErrValidation = errors.New("required field is empty")

	// ErrAuthFailed means the authentication boundary rejected the credentials.
	ErrAuthFailed = errors.New("invalid username or password")

	// ErrNotFound means a lookup by id missed.
	ErrNotFound = errors.New("not found")

	// ErrBusy means a sign-in was attempted while another was in flight.
	ErrBusy = errors.New("sign-in already in progress")
)

// Package common defines shared constants and sentinel errors used across
// the InvoTrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrNoSession means an authenticated operation was attempted without
	// a stored token. The CLI treats it as "please log in".
	ErrNoSession = errors.New("not logged in")
)

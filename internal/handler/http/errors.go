// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors raised at the HTTP boundary. Callers can match against
// them with [errors.Is].
var (
	// ErrTokenNotProvided is returned by the authentication gate when the
	// incoming request carries no "Authorization" header, or a header
	// that does not use the "Bearer" scheme.
	ErrTokenNotProvided = errors.New("token not provided")

	// ErrInvalidJSONBody is returned by handlers when a request body
	// cannot be decoded as JSON.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)

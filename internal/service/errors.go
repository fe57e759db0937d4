package service

import "errors"

var (
	// ErrInvalidCredentials is returned when a login attempt fails.
	// An unknown email and a wrong password produce this same error so
	// that the response never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenExpired is returned when a presented token is past its
	// embedded expiry.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned when a presented token fails any other
	// verification check: bad signature, unparsable encoding, wrong
	// issuer, or missing claims.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed is returned when signing a freshly minted
	// token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidUserData is returned when a create or update payload
	// fails validation. The validation detail is wrapped for logs but
	// never sent to the client.
	ErrInvalidUserData = errors.New("invalid user data provided")
)

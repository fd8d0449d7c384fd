package domain

import "errors"

var (
	// ErrEmailTaken and ErrUsernameTaken signal a violated uniqueness
	// invariant, whether caught by a pre-insert lookup or by the store's own
	// constraint when two registrations race.
	ErrEmailTaken    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already taken")

	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is deliberately undifferentiated: a missing
	// account and a wrong password must be indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed tokens, signature mismatches and
	// expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")
)

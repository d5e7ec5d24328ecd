package domain

import "errors"

var (
	// ErrDuplicateIdentity is returned when a (username, role) pair is
	// already registered.
	ErrDuplicateIdentity = errors.New("identity already registered")

	// ErrInvalidCredentials covers both an unknown (username, role) pair
	// and a wrong password. The two cases are deliberately
	// indistinguishable to resist user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for any token that fails signature,
	// structure, or expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownSubject is returned when a valid token references a user
	// that no longer exists.
	ErrUnknownSubject = errors.New("unknown token subject")

	// ErrForbidden is returned when an authenticated account lacks the
	// role an operation requires.
	ErrForbidden = errors.New("insufficient role")

	// ErrUserNotFound is the store-level miss signal. It never crosses the
	// API boundary directly: login translates it to ErrInvalidCredentials,
	// identity resolution to ErrUnknownSubject.
	ErrUserNotFound = errors.New("user not found")

	ErrProjectNotFound = errors.New("project not found")
)

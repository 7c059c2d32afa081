package account

import "errors"

var (
	// ErrPasswordMismatch signals that password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingFields signals an incomplete form submission.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidEmail signals an email that cannot be an address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrNotSignedIn signals an authorized operation without a session.
	ErrNotSignedIn = errors.New("not signed in")
)

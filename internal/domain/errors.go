package domain

import "errors"

var (
	// ErrUserNotFound reports a valid absence: no row matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken reports a unique-constraint violation on the email
	// column, surfaced when two users would share an email address.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPoolBusy reports that no connection became available within the
	// acquire timeout. Transient; callers may retry.
	ErrPoolBusy = errors.New("connection pool exhausted")

	// ErrConnectionSetup reports that the pool could not be established at
	// startup. Fatal to the process.
	ErrConnectionSetup = errors.New("database connection setup failed")
)

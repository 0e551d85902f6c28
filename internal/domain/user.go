package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository is the only component issuing SQL against the database.
// Every operation borrows one pooled connection for its duration and
// releases it on all exit paths.
type UserRepository interface {
	// List returns all users ordered by ascending ID. An empty slice is a
	// valid, non-error result.
	List(ctx context.Context) ([]User, error)

	// Create inserts a new user and returns the stored row including the
	// generated ID and creation timestamp. Returns ErrEmailTaken if the
	// email is already registered.
	Create(ctx context.Context, name, email string) (*User, error)

	// GetByID returns the user with the given ID, or ErrUserNotFound if no
	// row matches.
	GetByID(ctx context.Context, id int64) (*User, error)
}

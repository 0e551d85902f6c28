package domain

import "context"

// AppService is the application layer surface consumed by the HTTP handlers.
type AppService interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, name, email string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}

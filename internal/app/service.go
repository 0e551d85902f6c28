package app

import (
	"context"

	"usersvc/internal/domain"
)

// Service implements domain.AppService on top of the user repository.
type Service struct {
	users domain.UserRepository
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service.
func NewService(users domain.UserRepository) *Service {
	return &Service{users: users}
}

// ListUsers returns all users ordered by ascending ID.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// CreateUser stores a new user and returns the stored row.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	return s.users.Create(ctx, name, email)
}

// GetUser returns the user with the given ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

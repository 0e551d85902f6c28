package server

import (
	"context"
	"testing"
	"time"

	"usersvc/internal/config"
	"usersvc/internal/domain"
)

// mockAppService implements domain.AppService for handler tests.
type mockAppService struct {
	users     []domain.User
	listErr   error
	createErr error
	getErr    error
}

func (m *mockAppService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.users == nil {
		return []domain.User{}, nil
	}
	return m.users, nil
}

func (m *mockAppService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	user := domain.User{
		ID:        int64(len(m.users) + 1),
		Name:      name,
		Email:     email,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	m.users = append(m.users, user)
	return &user, nil
}

func (m *mockAppService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, user := range m.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// mockPool provides a minimal mock for database health checks.
type mockPool struct {
	pingErr error
}

func (m *mockPool) Ping(ctx context.Context) error {
	return m.pingErr
}

func newTestServer(t *testing.T, app domain.AppService, db postgresHealthChecker) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv: "test",
		Port:   "0",
	}
	return NewServer(cfg, app, db)
}

package database

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"usersvc/internal/config"
	"usersvc/internal/domain"
)

// parseDatabaseURL splits a postgres URL into the discrete Config fields.
func parseDatabaseURL(connStr string) *config.Config {
	u, err := url.Parse(connStr)
	if err != nil {
		panic("invalid test database URL: " + err.Error())
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		panic("invalid test database port: " + err.Error())
	}
	pass, _ := u.User.Password()

	return &config.Config{
		DBHost: u.Hostname(),
		DBPort: port,
		DBUser: u.User.Username(),
		DBPass: pass,
		DBName: strings.TrimPrefix(u.Path, "/"),
	}
}

// testConfig builds a Config pointing at the test container with the given
// pool bounds.
func testConfig(t *testing.T, minSize, maxSize int, acquireTimeout time.Duration) *config.Config {
	t.Helper()

	cfg := parseDatabaseURL(testDatabaseURL)
	cfg.PoolMinSize = minSize
	cfg.PoolMaxSize = maxSize
	cfg.CommandTimeout = 5 * time.Second
	cfg.AcquireTimeout = acquireTimeout
	return cfg
}

// newTestPool creates a dedicated pool against the test container and
// registers its cleanup.
func newTestPool(t *testing.T, minSize, maxSize int, acquireTimeout time.Duration) *Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool, err := NewPool(context.Background(), testConfig(t, minSize, maxSize, acquireTimeout))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// setupTestDB returns the shared pool and registers cleanup to empty the users table.
func setupTestDB(t *testing.T) *Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Cleanup(func() {
		err := testPool.WithConn(context.Background(), func(ctx context.Context, conn *pgxpool.Conn) error {
			_, err := conn.Exec(ctx, "TRUNCATE users RESTART IDENTITY")
			return err
		})
		require.NoError(t, err)
	})

	return testPool
}

// createTestUser inserts a user with default values for testing.
func createTestUser(t *testing.T, pool *Pool, email string) *domain.User {
	t.Helper()

	repo := NewUserRepo(pool)
	user, err := repo.Create(context.Background(), "testuser", email)
	require.NoError(t, err)
	require.Positive(t, user.ID)

	return user
}

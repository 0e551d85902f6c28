package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"usersvc/internal/domain"
)

// userColumns must match the Scan order in scanUser.
const userColumns = `id, name, email, created_at`

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// UserRepo implements domain.UserRepository backed by PostgreSQL.
// Each operation borrows exactly one connection from the pool for its
// duration; the pool guard releases it on every exit path.
type UserRepo struct {
	pool *Pool
}

var _ domain.UserRepository = (*UserRepo)(nil)

// NewUserRepo creates a UserRepo on the shared connection pool.
func NewUserRepo(pool *Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var user domain.User
			if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
				return fmt.Errorf("failed to scan user row: %w", err)
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *UserRepo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	var user *domain.User

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO users (name, email)
			VALUES ($1, $2)
			RETURNING `+userColumns+`
		`, name, email)

		var err error
		user, err = scanUser(row)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrEmailTaken, email)
		}
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		row := conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

		var err error
		user, err = scanUser(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get user by ID: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

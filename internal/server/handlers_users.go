package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"usersvc/internal/domain"
	apperrors "usersvc/internal/errors"
)

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (s *Server) handleListUsers(c echo.Context) error {
	users, err := s.app.ListUsers(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, users); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ValidationError("name and a valid email are required")
	}

	user, err := s.app.CreateUser(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(201, user); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetUser(c echo.Context) error {
	idParam := c.Param("id")

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id < 1 {
		return apperrors.ValidationError("id must be a positive integer").WithField("id", idParam)
	}

	user, err := s.app.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, user); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// mapDomainError is the single place translating domain failure kinds to
// HTTP-mapped structured errors. Internal error text never reaches clients.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NotFoundError("user not found")
	case errors.Is(err, domain.ErrEmailTaken):
		return apperrors.ConflictError("email already registered")
	case errors.Is(err, domain.ErrPoolBusy), errors.Is(err, domain.ErrConnectionSetup):
		return apperrors.UnavailableError("database busy, retry later", err)
	default:
		return apperrors.InternalError("internal server error", err)
	}
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

type authUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService verifies credentials against the users table. Session
// establishment itself is the session manager's job.
type AuthService struct {
	repo   authUserRepository
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, logger: logger}
}

// Login authenticates a username/password pair and returns the identity to
// bind to a session. An unknown username, an inactive account and a wrong
// password all produce the identical InvalidCredentials error so the
// response leaks nothing about which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.SessionIdentity, error) {
	if username == "" || password == "" {
		return nil, appErrors.Validation("Username and password are required", "username", "password")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to fetch user")
	}

	if !user.IsActive {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &models.SessionIdentity{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
	}, nil
}

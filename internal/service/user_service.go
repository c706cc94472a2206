package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

// bcryptCost matches the hashes already stored by the legacy panel.
const bcryptCost = 10

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int, error)
	Update(ctx context.Context, user *models.User, newPasswordHash string) error
	Delete(ctx context.Context, id int) error
}

// UserService handles the admin-only user management screens. User-facing
// messages stay in Turkish like the rest of the panel.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns every panel user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list users")
	}
	return users, nil
}

// Create adds a new login. Duplicate usernames conflict.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Kullanıcı adı ve şifre zorunludur")
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return 0, appErrors.Clone(appErrors.ErrConflict, "Bu kullanıcı adı zaten mevcut")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to check username uniqueness")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
		IsActive:     true,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to create user")
	}

	s.logger.Info("user created", zap.Int("user_id", id), zap.String("username", user.Username))

	return id, nil
}

// Update rewrites username, full name and the active flag. A blank
// password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id int, req dto.UpdateUserRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Kullanıcı adı zorunludur")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Kullanıcı bulunamadı")
		}
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load user")
	}

	var newHash string
	if strings.TrimSpace(req.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
		}
		newHash = string(hash)
	}

	user := &models.User{
		ID:       id,
		Username: req.Username,
		FullName: req.FullName,
		IsActive: req.IsActive,
	}

	if err := s.repo.Update(ctx, user, newHash); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to update user")
	}

	return nil
}

// Delete removes a login. The main admin row is protected.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if id == models.MainAdminID {
		return appErrors.Clone(appErrors.ErrForbidden, "Ana admin kullanıcısı silinemez")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to delete user")
	}

	s.logger.Info("user deleted", zap.Int("user_id", id))

	return nil
}

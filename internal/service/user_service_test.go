package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

type mockUserRepo struct {
	users          []models.User
	byID           *models.User
	byUsername     *models.User
	findByIDErr    error
	findByNameErr  error
	created        *models.User
	createErr      error
	updated        *models.User
	updatedNewHash string
	updateCalled   bool
	deletedID      int
	deleteCalled   bool
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	return m.byID, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByNameErr != nil {
		return nil, m.findByNameErr
	}
	return m.byUsername, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = user
	return 7, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User, newPasswordHash string) error {
	m.updateCalled = true
	m.updated = user
	m.updatedNewHash = newPasswordHash
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int) error {
	m.deleteCalled = true
	m.deletedID = id
	return nil
}

func TestCreateUser(t *testing.T) {
	repo := &mockUserRepo{findByNameErr: sql.ErrNoRows}
	svc := NewUserService(repo, nil, nil)

	id, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "mehmet",
		Password: "sifre123",
		FullName: "Mehmet Kaya",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	require.NotNil(t, repo.created)
	assert.True(t, repo.created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("sifre123")))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{byUsername: &models.User{ID: 3, Username: "mehmet"}}
	svc := NewUserService(repo, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "mehmet",
		Password: "sifre123",
		FullName: "Mehmet Kaya",
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "Bu kullanıcı adı zaten mevcut", appErr.Message)
	assert.Nil(t, repo.created)
}

func TestCreateUserShortPassword(t *testing.T) {
	repo := &mockUserRepo{findByNameErr: sql.ErrNoRows}
	svc := NewUserService(repo, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "mehmet",
		Password: "kisa",
		FullName: "Mehmet Kaya",
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUpdateUserBlankPasswordKeepsHash(t *testing.T) {
	repo := &mockUserRepo{byID: &models.User{ID: 4, Username: "mehmet"}}
	svc := NewUserService(repo, nil, nil)

	err := svc.Update(context.Background(), 4, dto.UpdateUserRequest{
		Username: "mehmet",
		FullName: "Mehmet Kaya",
		IsActive: true,
	})
	require.NoError(t, err)
	require.True(t, repo.updateCalled)
	assert.Empty(t, repo.updatedNewHash)
}

func TestUpdateUserWithNewPassword(t *testing.T) {
	repo := &mockUserRepo{byID: &models.User{ID: 4, Username: "mehmet"}}
	svc := NewUserService(repo, nil, nil)

	err := svc.Update(context.Background(), 4, dto.UpdateUserRequest{
		Username: "mehmet",
		Password: "yenisifre",
		FullName: "Mehmet Kaya",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, repo.updatedNewHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedNewHash), []byte("yenisifre")))
}

func TestUpdateUserNotFound(t *testing.T) {
	repo := &mockUserRepo{findByIDErr: sql.ErrNoRows}
	svc := NewUserService(repo, nil, nil)

	err := svc.Update(context.Background(), 99, dto.UpdateUserRequest{
		Username: "kimse",
		FullName: "Kimse Yok",
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Kullanıcı bulunamadı", appErr.Message)
}

func TestDeleteUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, 5, repo.deletedID)
}

func TestDeleteMainAdminForbidden(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, nil)

	err := svc.Delete(context.Background(), models.MainAdminID)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Equal(t, "Ana admin kullanıcısı silinemez", appErr.Message)
	assert.False(t, repo.deleteCalled)
}

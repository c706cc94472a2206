package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmpro/event-panel-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "username", "password_hash", "full_name", "is_active"})
}

func TestFindByUsername(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash, full_name, is_active FROM users WHERE username = $1 LIMIT 1")).
		WithArgs("ayse").
		WillReturnRows(userRows().AddRow(2, "ayse", "hash", "Ayşe Demir", true))

	user, err := repo.FindByUsername(context.Background(), "ayse")
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "Ayşe Demir", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT user_id, username").
		WithArgs("yok").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "yok")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListUsers(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash, full_name, is_active FROM users ORDER BY user_id DESC")).
		WillReturnRows(userRows().
			AddRow(2, "ayse", "hash", "Ayşe Demir", true).
			AddRow(1, "admin", "hash", "System Administrator", true))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ayse", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, full_name, is_active) VALUES ($1, $2, $3, $4) RETURNING user_id")).
		WithArgs("mehmet", "hash", "Mehmet Kaya", true).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	user := &models.User{Username: "mehmet", PasswordHash: "hash", FullName: "Mehmet Kaya", IsActive: true}
	id, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserWithPassword(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET username = $2, full_name = $3, is_active = $4, password_hash = $5 WHERE user_id = $1")).
		WithArgs(4, "mehmet", "Mehmet Kaya", true, "newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{ID: 4, Username: "mehmet", FullName: "Mehmet Kaya", IsActive: true}
	require.NoError(t, repo.Update(context.Background(), user, "newhash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserKeepsPassword(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET username = $2, full_name = $3, is_active = $4 WHERE user_id = $1")).
		WithArgs(4, "mehmet", "Mehmet Kaya", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{ID: 4, Username: "mehmet", FullName: "Mehmet Kaya", IsActive: false}
	require.NoError(t, repo.Update(context.Background(), user, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

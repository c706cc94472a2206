package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmpro/event-panel-api/internal/models"
)

func TestInsertAuditEntry(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))

	field := "uzm_city"
	oldValue := "Ankara"
	newValue := "İzmir"
	entry := &models.AuditEntry{
		TableName:  models.EventTableName,
		RecordID:   "event-1",
		FieldName:  &field,
		OldValue:   &oldValue,
		NewValue:   &newValue,
		ActionType: models.AuditActionUpdate,
		ActionBy:   "ayse",
	}

	require.NoError(t, repo.Insert(context.Background(), entry))
	assert.False(t, entry.ActionDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAuditEntryKeepsExplicitDate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))

	stamp := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	entry := &models.AuditEntry{
		TableName:  models.EventTableName,
		RecordID:   "event-1",
		ActionType: models.AuditActionDelete,
		ActionBy:   "ayse",
		ActionDate: stamp,
	}

	require.NoError(t, repo.Insert(context.Background(), entry))
	assert.Equal(t, stamp, entry.ActionDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

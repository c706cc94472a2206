package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmpro/event-panel-api/internal/models"
)

func TestRecordOptionalColumns(t *testing.T) {
	repo := &mockAuditRepo{}
	writer := NewAuditWriter(repo, nil, nil)

	writer.Record(context.Background(), models.EventTableName, "event-1", "", "", `{"budgetId":"b1"}`, models.AuditActionInsert, "ayse")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Nil(t, entry.FieldName)
	assert.Nil(t, entry.OldValue)
	require.NotNil(t, entry.NewValue)
	assert.Equal(t, `{"budgetId":"b1"}`, *entry.NewValue)
	assert.Equal(t, "ayse", entry.ActionBy)
}

func TestRecordSwallowsFailure(t *testing.T) {
	repo := &mockAuditRepo{insertErr: errors.New("connection reset")}
	writer := NewAuditWriter(repo, nil, nil)

	// Must not panic or surface the error in any way.
	writer.Record(context.Background(), models.EventTableName, "event-1", "uzm_city", "Ankara", "İzmir", models.AuditActionUpdate, "ayse")

	assert.Empty(t, repo.entries)
}

func TestRecordBatchWritesEveryChange(t *testing.T) {
	repo := &mockAuditRepo{}
	writer := NewAuditWriter(repo, nil, nil)

	changes := []models.FieldChange{
		{FieldName: "uzm_city", OldValue: "Ankara", NewValue: "İzmir"},
		{FieldName: "uzm_adress", OldValue: "Eski Adres", NewValue: "Yeni Adres"},
		{FieldName: "uzm_nationality", OldValue: "1", NewValue: "2"},
	}
	writer.RecordBatch(context.Background(), models.EventTableName, "event-1", changes, "ayse")

	entries := repo.byAction(models.AuditActionUpdate)
	require.Len(t, entries, 3)

	fields := make([]string, 0, len(entries))
	for _, e := range entries {
		require.NotNil(t, e.FieldName)
		fields = append(fields, *e.FieldName)
	}
	assert.ElementsMatch(t, []string{"uzm_city", "uzm_adress", "uzm_nationality"}, fields)
}

func TestRecordBatchCountsOutcomes(t *testing.T) {
	metrics := NewMetricsService()
	repo := &mockAuditRepo{insertErr: errors.New("audit table unavailable")}
	writer := NewAuditWriter(repo, nil, metrics)

	changes := []models.FieldChange{
		{FieldName: "uzm_city", OldValue: "Ankara", NewValue: "İzmir"},
		{FieldName: "is_deleted", OldValue: "0", NewValue: "1"},
	}
	writer.RecordBatch(context.Background(), models.EventTableName, "event-1", changes, "ayse")

	// Both appends fail independently; neither aborts the batch.
	assert.Empty(t, repo.entries)
}

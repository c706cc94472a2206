package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/uzmpro/event-panel-api/internal/models"
)

type auditRepository interface {
	Insert(ctx context.Context, entry *models.AuditEntry) error
}

// AuditWriter appends change-tracking entries to the audit ledger. It is
// strictly best-effort: a failed append is logged and counted, never
// surfaced, so the caller's primary write cannot be broken by it.
type AuditWriter struct {
	repo    auditRepository
	logger  *zap.Logger
	metrics *MetricsService
}

// NewAuditWriter constructs an AuditWriter. The metrics service may be nil.
func NewAuditWriter(repo auditRepository, logger *zap.Logger, metrics *MetricsService) *AuditWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditWriter{repo: repo, logger: logger, metrics: metrics}
}

// Record appends exactly one ledger entry. FieldName, OldValue and
// NewValue may be empty for INSERT/DELETE summary entries.
func (w *AuditWriter) Record(ctx context.Context, table, recordID, fieldName, oldValue, newValue, actionType, actionBy string) {
	entry := &models.AuditEntry{
		TableName:  table,
		RecordID:   recordID,
		FieldName:  optional(fieldName),
		OldValue:   optional(oldValue),
		NewValue:   optional(newValue),
		ActionType: actionType,
		ActionBy:   actionBy,
	}

	err := w.repo.Insert(ctx, entry)
	if w.metrics != nil {
		w.metrics.ObserveAuditWrite(err == nil)
	}
	if err != nil {
		w.logger.Warn("failed to append audit entry",
			zap.String("table", table),
			zap.String("record_id", recordID),
			zap.String("action", actionType),
			zap.Error(err),
		)
	}
}

// RecordBatch appends one UPDATE entry per field change. Entries are
// written concurrently and independently: a failing entry never stops the
// others, and the ledger guarantees no ordering between them.
func (w *AuditWriter) RecordBatch(ctx context.Context, table, recordID string, changes []models.FieldChange, actionBy string) {
	var wg sync.WaitGroup
	for _, change := range changes {
		wg.Add(1)
		go func(ch models.FieldChange) {
			defer wg.Done()
			w.Record(ctx, table, recordID, ch.FieldName, ch.OldValue, ch.NewValue, models.AuditActionUpdate, actionBy)
		}(change)
	}
	wg.Wait()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/uzmpro/event-panel-api/internal/models"
)

// AuditRepository appends to the audit_log ledger. The table is
// append-only; there are no update or delete statements here.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends exactly one ledger entry.
func (r *AuditRepository) Insert(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ActionDate.IsZero() {
		entry.ActionDate = time.Now().UTC()
	}
	const query = `INSERT INTO audit_log (table_name, record_id, field_name, old_value, new_value, action_type, action_by, action_date) VALUES (:table_name, :record_id, :field_name, :old_value, :new_value, :action_type, :action_by, :action_date)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

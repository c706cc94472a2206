package models

import "time"

// Action types recorded in the audit ledger.
const (
	AuditActionInsert = "INSERT"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// EventTableName is the table name audit entries for invitation rows carry.
const EventTableName = "uzm_event"

// AuditEntry is one immutable fact in the append-only audit_log table.
// UPDATE entries carry a field name and both values; INSERT and DELETE
// entries summarize the whole record.
type AuditEntry struct {
	ID         int64     `db:"audit_id" json:"audit_id"`
	TableName  string    `db:"table_name" json:"table_name"`
	RecordID   string    `db:"record_id" json:"record_id"`
	FieldName  *string   `db:"field_name" json:"field_name,omitempty"`
	OldValue   *string   `db:"old_value" json:"old_value,omitempty"`
	NewValue   *string   `db:"new_value" json:"new_value,omitempty"`
	ActionType string    `db:"action_type" json:"action_type"`
	ActionBy   string    `db:"action_by" json:"action_by"`
	ActionDate time.Time `db:"action_date" json:"action_date"`
}

// FieldChange is a single field-level diff queued for the ledger.
type FieldChange struct {
	FieldName string
	OldValue  string
	NewValue  string
}

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context) ([]models.EventListItem, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
}

// trackedFields are the columns diffed into the audit ledger on update.
// The list is fixed; the remaining columns change silently.
var trackedFields = [...]string{"uzm_budgetid", "uzm_nationality", "uzm_adress", "uzm_city", "is_deleted"}

// EventService owns the invitation record lifecycle: validation, the
// primary writes and the change-tracking hand-off.
type EventService struct {
	repo    eventRepository
	audit   *AuditWriter
	metrics *MetricsService
	logger  *zap.Logger
}

// NewEventService constructs an EventService instance. metrics may be nil.
func NewEventService(repo eventRepository, audit *AuditWriter, metrics *MetricsService, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, audit: audit, metrics: metrics, logger: logger}
}

// List returns the full denormalized grid, ordered by budget display name
// with Turkish collation. No pagination: the grid filters client-side.
func (s *EventService) List(ctx context.Context) ([]models.EventListItem, error) {
	start := time.Now()
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list events")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("event_list", time.Since(start))
	}

	collator := collate.New(language.Turkish)
	sort.SliceStable(items, func(i, j int) bool {
		return collator.CompareString(items[i].BudgetName, items[j].BudgetName) < 0
	})

	return items, nil
}

// Get returns one raw row by id. Deleted rows are still returned so the
// edit modal can show and toggle the flag.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	start := time.Now()
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load event")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("event_find", time.Since(start))
	}
	return event, nil
}

// Create validates and persists a new invitation row, then appends one
// INSERT ledger entry carrying the submitted payload.
func (s *EventService) Create(ctx context.Context, in dto.EventInput, actor string) (string, error) {
	if err := validateEventInput(in); err != nil {
		return "", err
	}

	addressType := in.AddressType
	if addressType == 0 {
		addressType = models.AddressTypeAdHoc
	}

	event := &models.Event{
		ContactID:     nullable(in.ContactID),
		AddressType:   addressType,
		BudgetID:      in.BudgetID,
		Nationality:   in.Nationality,
		Address:       nullable(in.Address),
		Country:       nullable(in.Country),
		City:          nullable(in.City),
		County:        nullable(in.County),
		District:      nullable(in.State),
		PostalCode:    nullable(in.PostalCode),
		FirstName:     nullable(in.FirstName),
		LastName:      nullable(in.LastName),
		Company:       nullable(in.Company),
		JobTitle:      nullable(in.JobTitle),
		SalutationID:  in.SalutationID,
		BusinessCard1: nullable(in.BusinessCard1),
		BusinessCard2: nullable(in.BusinessCard2),
		BusinessCard3: nullable(in.BusinessCard3),
		BusinessCard4: nullable(in.BusinessCard4),
		BusinessCard5: nullable(in.BusinessCard5),
		IsModified:    false,
		IsDeleted:     false,
		CreatedBy:     nullable(actor),
		CreatedDate:   time.Now().UTC(),
		StateCode:     0,
	}

	start := time.Now()
	if err := s.repo.Insert(ctx, event); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to create event")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("event_insert", time.Since(start))
	}

	payload, _ := json.Marshal(in)
	s.audit.Record(ctx, models.EventTableName, event.ID, "", "", string(payload), models.AuditActionInsert, actor)

	s.logger.Info("event created", zap.String("event_id", event.ID), zap.String("created_by", actor))

	return event.ID, nil
}

// Update overwrites every mutable field in one statement, then diffs the
// tracked fields against the prior state into the ledger. Ledger appends
// run after the primary write and can never fail the call.
func (s *EventService) Update(ctx context.Context, id string, in dto.EventInput, actor string) error {
	start := time.Now()
	old, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load event")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("event_find", time.Since(start))
	}

	addressType := in.AddressType
	if addressType == 0 {
		addressType = models.AddressTypeAdHoc
	}

	// A delete-only edit is not a content modification: the previous
	// is_modified value is carried over unchanged.
	isModified := true
	if in.IsDeleted {
		isModified = old.IsModified
	}

	now := time.Now().UTC()
	updated := &models.Event{
		ID:            id,
		ContactID:     nullable(in.ContactID),
		AddressType:   addressType,
		BudgetID:      in.BudgetID,
		Nationality:   in.Nationality,
		Address:       nullable(in.Address),
		Country:       nullable(in.Country),
		City:          nullable(in.City),
		County:        nullable(in.County),
		District:      nullable(in.State),
		PostalCode:    nullable(in.PostalCode),
		FirstName:     nullable(in.FirstName),
		LastName:      nullable(in.LastName),
		Company:       nullable(in.Company),
		JobTitle:      nullable(in.JobTitle),
		SalutationID:  in.SalutationID,
		BusinessCard1: nullable(in.BusinessCard1),
		BusinessCard2: nullable(in.BusinessCard2),
		BusinessCard3: nullable(in.BusinessCard3),
		BusinessCard4: nullable(in.BusinessCard4),
		BusinessCard5: nullable(in.BusinessCard5),
		IsModified:    isModified,
		IsDeleted:     in.IsDeleted,
		ModifiedBy:    nullable(actor),
		ModifiedDate:  &now,
	}

	start = time.Now()
	if err := s.repo.Update(ctx, updated); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to update event")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("event_update", time.Since(start))
	}

	changes := diffTrackedFields(old, in)
	if len(changes) > 0 {
		s.audit.RecordBatch(ctx, models.EventTableName, id, changes, actor)
	}

	// Every delete-flagged update writes a DELETE entry, even when the
	// flag was already set; the ledger is deliberately not deduplicated.
	if in.IsDeleted {
		s.audit.Record(ctx, models.EventTableName, id, "is_deleted", "0", "1", models.AuditActionDelete, actor)
	}

	s.logger.Info("event updated", zap.String("event_id", id), zap.String("modified_by", actor))

	return nil
}

// validateEventInput enforces the required fields for create and names
// every missing one in the error.
func validateEventInput(in dto.EventInput) error {
	var missing []string
	if in.BudgetID == "" {
		missing = append(missing, "budgetId")
	}
	if in.Nationality == 0 {
		missing = append(missing, "nationality")
	}
	if in.SalutationID == "" {
		missing = append(missing, "salutationId")
	}
	if !hasBusinessCard(in) {
		missing = append(missing, "businessCard1")
	}
	if len(missing) > 0 {
		return appErrors.Validation("BÜTÇE, GÖNDERİM TÜRÜ, MESAJ ve en az 1 KARTVİZİT zorunludur", missing...)
	}
	return nil
}

func hasBusinessCard(in dto.EventInput) bool {
	for _, card := range in.BusinessCards() {
		if card != "" {
			return true
		}
	}
	return false
}

// diffTrackedFields compares old and new values of the tracked columns.
// Both sides are normalized to strings first, so a value that merely
// changed representation (1 vs "1") does not register as a change.
func diffTrackedFields(old *models.Event, in dto.EventInput) []models.FieldChange {
	pairs := []struct {
		field    string
		oldValue string
		newValue string
	}{
		{trackedFields[0], old.BudgetID, in.BudgetID},
		{trackedFields[1], strconv.Itoa(old.Nationality), strconv.Itoa(in.Nationality)},
		{trackedFields[2], deref(old.Address), in.Address},
		{trackedFields[3], deref(old.City), in.City},
		{trackedFields[4], boolBit(old.IsDeleted), boolBit(in.IsDeleted)},
	}

	var changes []models.FieldChange
	for _, pair := range pairs {
		if pair.oldValue != pair.newValue {
			changes = append(changes, models.FieldChange{
				FieldName: pair.field,
				OldValue:  pair.oldValue,
				NewValue:  pair.newValue,
			})
		}
	}
	return changes
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

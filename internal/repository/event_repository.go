package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uzmpro/event-panel-api/internal/models"
)

// EventRepository provides database access to the uzm_event table.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// listQuery resolves every lookup to its display name. The grid wants the
// whole table at once; filtering and sorting happen client-side.
const listQuery = `SELECT
	ue.uzm_eventid,
	ubb.uzm_name AS butce,
	CASE WHEN ue.uzm_nationality = 2 THEN 'YURTDIŞI' ELSE 'YURTİÇİ' END AS gonderim_turu,
	ue.uzm_adress AS adres,
	ue.uzm_countryidname AS ulke,
	ue.uzm_city AS sehir,
	ue.uzm_county AS ilce,
	ue.uzm_businessstate AS semt,
	ue.uzm_zippostalcode AS posta_kodu,
	ue.firstname AS ad,
	ue.lastname AS soyad,
	ue.company AS sirket,
	ue.jobtitle AS unvan,
	usb.uzm_name AS mesaj,
	ubc1.uzm_name AS kartvizit1,
	ubc2.uzm_name AS kartvizit2,
	ubc3.uzm_name AS kartvizit3,
	ubc4.uzm_name AS kartvizit4,
	ubc5.uzm_name AS kartvizit5,
	ue.uzm_contactid,
	ue.is_modified,
	ue.is_deleted,
	ue.created_date,
	ue.modified_date,
	ue.modified_by
FROM uzm_event ue
INNER JOIN uzm_budgetbase ubb ON ubb.uzm_budgetid = ue.uzm_budgetid
LEFT JOIN uzm_salutationbase usb ON usb.uzm_salutationid = ue.uzm_salutationid
LEFT JOIN uzm_businesscard ubc1 ON ubc1.uzm_businesscardid = ue.uzm_businesscard1
LEFT JOIN uzm_businesscard ubc2 ON ubc2.uzm_businesscardid = ue.uzm_businesscard2
LEFT JOIN uzm_businesscard ubc3 ON ubc3.uzm_businesscardid = ue.uzm_businesscard3
LEFT JOIN uzm_businesscard ubc4 ON ubc4.uzm_businesscardid = ue.uzm_businesscard4
LEFT JOIN uzm_businesscard ubc5 ON ubc5.uzm_businesscardid = ue.uzm_businesscard5
WHERE ue.uzm_eventtypeid = $1 AND ue.statecode = 0 AND ue.is_deleted = FALSE`

// List returns every non-deleted invitation row of the fixed event
// category, denormalized for the grid. Ordering is applied by the service.
func (r *EventRepository) List(ctx context.Context) ([]models.EventListItem, error) {
	var items []models.EventListItem
	if err := r.db.SelectContext(ctx, &items, listQuery, models.EventTypeID); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

const eventColumns = `uzm_eventid, uzm_contactid, uzm_addresstype, uzm_budgetid, uzm_nationality, uzm_adress, uzm_countryidname, uzm_city, uzm_county, uzm_businessstate, uzm_zippostalcode, firstname, lastname, company, jobtitle, uzm_salutationid, uzm_businesscard1, uzm_businesscard2, uzm_businesscard3, uzm_businesscard4, uzm_businesscard5, is_modified, is_deleted, created_by, created_date, modified_by, modified_date, statecode, uzm_eventtypeid`

// FindByID returns the raw row by identifier; deleted rows are still
// retrievable so the edit flow can toggle the flag back off.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM uzm_event WHERE uzm_eventid = $1 LIMIT 1`, eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return &event, nil
}

// Insert persists a new invitation row and fills in the generated id.
func (r *EventRepository) Insert(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.EventTypeID = models.EventTypeID

	const query = `INSERT INTO uzm_event (uzm_eventid, uzm_contactid, uzm_addresstype, uzm_budgetid, uzm_nationality, uzm_adress, uzm_countryidname, uzm_city, uzm_county, uzm_businessstate, uzm_zippostalcode, firstname, lastname, company, jobtitle, uzm_salutationid, uzm_businesscard1, uzm_businesscard2, uzm_businesscard3, uzm_businesscard4, uzm_businesscard5, is_modified, is_deleted, created_by, created_date, statecode, uzm_eventtypeid) VALUES (:uzm_eventid, :uzm_contactid, :uzm_addresstype, :uzm_budgetid, :uzm_nationality, :uzm_adress, :uzm_countryidname, :uzm_city, :uzm_county, :uzm_businessstate, :uzm_zippostalcode, :firstname, :lastname, :company, :jobtitle, :uzm_salutationid, :uzm_businesscard1, :uzm_businesscard2, :uzm_businesscard3, :uzm_businesscard4, :uzm_businesscard5, :is_modified, :is_deleted, :created_by, :created_date, :statecode, :uzm_eventtypeid)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Update writes every mutable field in one statement. Last write wins; the
// panel carries no version column.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	const query = `UPDATE uzm_event SET uzm_contactid = :uzm_contactid, uzm_addresstype = :uzm_addresstype, uzm_budgetid = :uzm_budgetid, uzm_nationality = :uzm_nationality, uzm_adress = :uzm_adress, uzm_countryidname = :uzm_countryidname, uzm_city = :uzm_city, uzm_county = :uzm_county, uzm_businessstate = :uzm_businessstate, uzm_zippostalcode = :uzm_zippostalcode, firstname = :firstname, lastname = :lastname, company = :company, jobtitle = :jobtitle, uzm_salutationid = :uzm_salutationid, uzm_businesscard1 = :uzm_businesscard1, uzm_businesscard2 = :uzm_businesscard2, uzm_businesscard3 = :uzm_businesscard3, uzm_businesscard4 = :uzm_businesscard4, uzm_businesscard5 = :uzm_businesscard5, is_modified = :is_modified, is_deleted = :is_deleted, modified_by = :modified_by, modified_date = :modified_date WHERE uzm_eventid = :uzm_eventid`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmpro/event-panel-api/internal/models"
)

func TestListEvents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"uzm_eventid", "butce", "gonderim_turu", "adres", "ulke", "sehir",
		"ilce", "semt", "posta_kodu", "ad", "soyad", "sirket", "unvan",
		"mesaj", "kartvizit1", "kartvizit2", "kartvizit3", "kartvizit4",
		"kartvizit5", "uzm_contactid", "is_modified", "is_deleted",
		"created_date", "modified_date", "modified_by",
	}).AddRow(
		"event-1", "Bütçe A", "YURTİÇİ", "Atatürk Cad. No:1", "Türkiye",
		"İstanbul", "Kadıköy", "Merkez", "34710", "Ahmet", "Yılmaz",
		"ABC Teknoloji A.Ş.", "Genel Müdür", "Sayın İlgili",
		"Standart Kartvizit", nil, nil, nil, nil, nil, false, false,
		now, nil, nil,
	)

	mock.ExpectQuery("SELECT(.|\n)+FROM uzm_event ue(.|\n)+is_deleted = FALSE").
		WithArgs(models.EventTypeID).
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bütçe A", items[0].BudgetName)
	assert.Equal(t, "YURTİÇİ", items[0].DispatchType)
	assert.Equal(t, "İstanbul", *items[0].City)
	assert.Nil(t, items[0].BusinessCard2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEventByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"uzm_eventid", "uzm_contactid", "uzm_addresstype", "uzm_budgetid",
		"uzm_nationality", "uzm_adress", "uzm_countryidname", "uzm_city",
		"uzm_county", "uzm_businessstate", "uzm_zippostalcode",
		"firstname", "lastname", "company", "jobtitle", "uzm_salutationid",
		"uzm_businesscard1", "uzm_businesscard2", "uzm_businesscard3",
		"uzm_businesscard4", "uzm_businesscard5", "is_modified",
		"is_deleted", "created_by", "created_date", "modified_by",
		"modified_date", "statecode", "uzm_eventtypeid",
	}).AddRow(
		"event-1", nil, 3, "budget-1", 1, "Atatürk Cad. No:1", "Türkiye",
		"Ankara", nil, nil, nil, "Ahmet", "Yılmaz", nil, nil,
		"salutation-1", "card-1", nil, nil, nil, nil, false, true, "admin",
		now, nil, nil, 0, models.EventTypeID,
	)

	mock.ExpectQuery("SELECT .+ FROM uzm_event WHERE uzm_eventid = \\$1 LIMIT 1").
		WithArgs("event-1").
		WillReturnRows(rows)

	event, err := repo.FindByID(context.Background(), "event-1")
	require.NoError(t, err)
	assert.Equal(t, "budget-1", event.BudgetID)
	// Deleted rows come back; the grid query is the one that filters.
	assert.True(t, event.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEventByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery("SELECT .+ FROM uzm_event WHERE uzm_eventid").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertEvent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("INSERT INTO uzm_event").
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &models.Event{
		BudgetID:     "budget-1",
		Nationality:  models.NationalityDomestic,
		SalutationID: "salutation-1",
		AddressType:  models.AddressTypeAdHoc,
		CreatedDate:  time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), event))

	// The repository fills in the id and the fixed event type.
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, models.EventTypeID, event.EventTypeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("UPDATE uzm_event SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	event := &models.Event{
		ID:           "event-1",
		BudgetID:     "budget-1",
		Nationality:  models.NationalityInternational,
		SalutationID: "salutation-1",
		AddressType:  models.AddressTypeAdHoc,
		IsModified:   true,
		ModifiedDate: &now,
	}
	require.NoError(t, repo.Update(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

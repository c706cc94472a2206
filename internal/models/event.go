package models

import "time"

// EventTypeID is the fixed category every invitation row belongs to,
// inherited from the CRM schema this panel was carved out of.
const EventTypeID = "C89A605F-7F52-F011-8BAA-005056A1F1F4"

// Nationality values for the GONDERIM_TURU display label.
const (
	NationalityDomestic      = 1
	NationalityInternational = 2
)

// Address source selector values.
const (
	AddressTypeBusiness = 1
	AddressTypeHome     = 2
	AddressTypeAdHoc    = 3
)

// Event is one invitation row exactly as stored in uzm_event. Legacy CRM
// column names (including the uzm_adress spelling) are kept on purpose:
// the audit ledger and the grid frontend already speak them.
type Event struct {
	ID            string     `db:"uzm_eventid" json:"uzm_eventId"`
	ContactID     *string    `db:"uzm_contactid" json:"uzm_contactid"`
	AddressType   int        `db:"uzm_addresstype" json:"uzm_addresstype"`
	BudgetID      string     `db:"uzm_budgetid" json:"uzm_budgetid"`
	Nationality   int        `db:"uzm_nationality" json:"uzm_nationality"`
	Address       *string    `db:"uzm_adress" json:"uzm_adress"`
	Country       *string    `db:"uzm_countryidname" json:"uzm_CountryidName"`
	City          *string    `db:"uzm_city" json:"uzm_city"`
	County        *string    `db:"uzm_county" json:"uzm_county"`
	District      *string    `db:"uzm_businessstate" json:"uzm_businessstate"`
	PostalCode    *string    `db:"uzm_zippostalcode" json:"uzm_zippostalcode"`
	FirstName     *string    `db:"firstname" json:"FirstName"`
	LastName      *string    `db:"lastname" json:"LastName"`
	Company       *string    `db:"company" json:"Company"`
	JobTitle      *string    `db:"jobtitle" json:"JobTitle"`
	SalutationID  string     `db:"uzm_salutationid" json:"uzm_salutationid"`
	BusinessCard1 *string    `db:"uzm_businesscard1" json:"uzm_BusinessCard1"`
	BusinessCard2 *string    `db:"uzm_businesscard2" json:"uzm_BusinessCard2"`
	BusinessCard3 *string    `db:"uzm_businesscard3" json:"uzm_BusinessCard3"`
	BusinessCard4 *string    `db:"uzm_businesscard4" json:"uzm_BusinessCard4"`
	BusinessCard5 *string    `db:"uzm_businesscard5" json:"uzm_BusinessCard5"`
	IsModified    bool       `db:"is_modified" json:"is_modified"`
	IsDeleted     bool       `db:"is_deleted" json:"is_deleted"`
	CreatedBy     *string    `db:"created_by" json:"created_by"`
	CreatedDate   time.Time  `db:"created_date" json:"created_date"`
	ModifiedBy    *string    `db:"modified_by" json:"modified_by"`
	ModifiedDate  *time.Time `db:"modified_date" json:"modified_date"`
	StateCode     int        `db:"statecode" json:"statecode"`
	EventTypeID   string     `db:"uzm_eventtypeid" json:"uzm_eventtypeid"`
}

// EventListItem is the denormalized grid row: every lookup resolved to its
// display name, aliased the way the frontend's Excel-like grid expects.
type EventListItem struct {
	ID            string     `db:"uzm_eventid" json:"uzm_eventId"`
	BudgetName    string     `db:"butce" json:"BUTCE"`
	DispatchType  string     `db:"gonderim_turu" json:"GONDERIM_TURU"`
	Address       *string    `db:"adres" json:"ADRES"`
	Country       *string    `db:"ulke" json:"ULKE"`
	City          *string    `db:"sehir" json:"SEHIR"`
	County        *string    `db:"ilce" json:"ILCE"`
	District      *string    `db:"semt" json:"SEMT"`
	PostalCode    *string    `db:"posta_kodu" json:"POSTA_KODU"`
	FirstName     *string    `db:"ad" json:"AD"`
	LastName      *string    `db:"soyad" json:"SOYAD"`
	Company       *string    `db:"sirket" json:"SIRKET"`
	JobTitle      *string    `db:"unvan" json:"UNVAN"`
	Salutation    *string    `db:"mesaj" json:"MESAJ"`
	BusinessCard1 *string    `db:"kartvizit1" json:"KARTVIZIT1"`
	BusinessCard2 *string    `db:"kartvizit2" json:"KARTVIZIT2"`
	BusinessCard3 *string    `db:"kartvizit3" json:"KARTVIZIT3"`
	BusinessCard4 *string    `db:"kartvizit4" json:"KARTVIZIT4"`
	BusinessCard5 *string    `db:"kartvizit5" json:"KARTVIZIT5"`
	ContactID     *string    `db:"uzm_contactid" json:"uzm_contactid"`
	IsModified    bool       `db:"is_modified" json:"is_modified"`
	IsDeleted     bool       `db:"is_deleted" json:"is_deleted"`
	CreatedDate   time.Time  `db:"created_date" json:"created_date"`
	ModifiedDate  *time.Time `db:"modified_date" json:"modified_date"`
	ModifiedBy    *string    `db:"modified_by" json:"modified_by"`
}

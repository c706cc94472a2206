package dto

import "github.com/uzmpro/event-panel-api/internal/models"

// EventInput is the create/update payload for an invitation row. Field
// names match what the grid's edit modal submits.
type EventInput struct {
	BudgetID      string `json:"budgetId"`
	Nationality   int    `json:"nationality"`
	ContactID     string `json:"contactId"`
	AddressType   int    `json:"addressType"`
	Address       string `json:"address"`
	Country       string `json:"country"`
	City          string `json:"city"`
	County        string `json:"county"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company"`
	JobTitle      string `json:"jobTitle"`
	SalutationID  string `json:"salutationId"`
	BusinessCard1 string `json:"businessCard1"`
	BusinessCard2 string `json:"businessCard2"`
	BusinessCard3 string `json:"businessCard3"`
	BusinessCard4 string `json:"businessCard4"`
	BusinessCard5 string `json:"businessCard5"`
	IsDeleted     bool   `json:"isDeleted"`
}

// BusinessCards returns the five card selections in slot order.
func (in EventInput) BusinessCards() [5]string {
	return [5]string{in.BusinessCard1, in.BusinessCard2, in.BusinessCard3, in.BusinessCard4, in.BusinessCard5}
}

// EventListResponse is the full, unpaginated grid payload.
type EventListResponse struct {
	Success bool                   `json:"success"`
	Data    []models.EventListItem `json:"data"`
	Total   int                    `json:"total"`
}

// EventResponse wraps one raw event row.
type EventResponse struct {
	Success bool          `json:"success"`
	Data    *models.Event `json:"data"`
}

// EventCreatedResponse reports the identifier of a newly inserted row.
type EventCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

// EventUpdatedResponse acknowledges an update.
type EventUpdatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LookupResponse carries reference rows for a dropdown.
type LookupResponse struct {
	Success bool                `json:"success"`
	Data    []models.LookupItem `json:"data"`
}

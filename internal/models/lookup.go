package models

// LookupItem is one row of a reference table (budget, salutation or
// business card), reduced to what a dropdown needs.
type LookupItem struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

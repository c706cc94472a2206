package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/uzmpro/event-panel-api/internal/models"
)

// LookupRepository reads the three reference tables backing the grid's
// dropdowns. They are seeded externally and read-only here.
type LookupRepository struct {
	db *sqlx.DB
}

// NewLookupRepository creates a new instance of LookupRepository.
func NewLookupRepository(db *sqlx.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// Budgets returns the active budget codes ordered by name.
func (r *LookupRepository) Budgets(ctx context.Context) ([]models.LookupItem, error) {
	const query = `SELECT uzm_budgetid AS id, uzm_name AS name FROM uzm_budgetbase WHERE is_active = TRUE ORDER BY uzm_name`
	var items []models.LookupItem
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return items, nil
}

// Salutations returns the active message templates ordered by name.
func (r *LookupRepository) Salutations(ctx context.Context) ([]models.LookupItem, error) {
	const query = `SELECT uzm_salutationid AS id, uzm_name AS name FROM uzm_salutationbase WHERE is_active = TRUE ORDER BY uzm_name`
	var items []models.LookupItem
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list salutations: %w", err)
	}
	return items, nil
}

// BusinessCards returns the active business card designs ordered by name.
func (r *LookupRepository) BusinessCards(ctx context.Context) ([]models.LookupItem, error) {
	const query = `SELECT uzm_businesscardid AS id, uzm_name AS name FROM uzm_businesscard WHERE is_active = TRUE ORDER BY uzm_name`
	var items []models.LookupItem
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list business cards: %w", err)
	}
	return items, nil
}

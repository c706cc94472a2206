package service

import (
	"context"

	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

type lookupRepository interface {
	Budgets(ctx context.Context) ([]models.LookupItem, error)
	Salutations(ctx context.Context) ([]models.LookupItem, error)
	BusinessCards(ctx context.Context) ([]models.LookupItem, error)
}

// LookupService serves the reference dropdowns.
type LookupService struct {
	repo lookupRepository
}

// NewLookupService constructs a LookupService instance.
func NewLookupService(repo lookupRepository) *LookupService {
	return &LookupService{repo: repo}
}

func (s *LookupService) Budgets(ctx context.Context) ([]models.LookupItem, error) {
	items, err := s.repo.Budgets(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list budgets")
	}
	return items, nil
}

func (s *LookupService) Salutations(ctx context.Context) ([]models.LookupItem, error) {
	items, err := s.repo.Salutations(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list salutations")
	}
	return items, nil
}

func (s *LookupService) BusinessCards(ctx context.Context) ([]models.LookupItem, error) {
	items, err := s.repo.BusinessCards(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list business cards")
	}
	return items, nil
}

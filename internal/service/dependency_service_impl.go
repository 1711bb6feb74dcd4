package service

import (
	"context"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
)

type dependencyService struct {
	deps  repository.DependencyRepo
	items repository.TrackingItemRepo
}

func NewDependencyService(deps repository.DependencyRepo, items repository.TrackingItemRepo) DependencyService {
	return &dependencyService{deps: deps, items: items}
}

// Add records a finish-to-start edge between two existing items. Both
// endpoints must exist and must differ; deeper graph validation (cycles,
// slack) is out of scope.
func (s *dependencyService) Add(ctx context.Context, predecessorID, successorID string) error {
	if predecessorID == successorID {
		return fmt.Errorf("an item cannot depend on itself")
	}
	if _, err := s.items.GetByID(ctx, predecessorID); err != nil {
		return fmt.Errorf("predecessor %s: %w", predecessorID, err)
	}
	if _, err := s.items.GetByID(ctx, successorID); err != nil {
		return fmt.Errorf("successor %s: %w", successorID, err)
	}
	return s.deps.Create(ctx, &domain.ItemDependency{
		PredecessorItemID: predecessorID,
		SuccessorItemID:   successorID,
	})
}

func (s *dependencyService) Remove(ctx context.Context, predecessorID, successorID string) error {
	return s.deps.Delete(ctx, predecessorID, successorID)
}

func (s *dependencyService) ListPredecessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error) {
	return s.deps.ListPredecessors(ctx, itemID)
}

func (s *dependencyService) ListSuccessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error) {
	return s.deps.ListSuccessors(ctx, itemID)
}

package service

import (
	"context"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/google/uuid"
)

type pendingService struct {
	pending repository.PendingRepo
}

func NewPendingService(pending repository.PendingRepo) PendingService {
	return &pendingService{pending: pending}
}

func (s *pendingService) Create(ctx context.Context, p *domain.PendingItem) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = "open"
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.pending.Create(ctx, p)
}

func (s *pendingService) GetByID(ctx context.Context, id string) (*domain.PendingItem, error) {
	return s.pending.GetByID(ctx, id)
}

func (s *pendingService) ListByProject(ctx context.Context, projectID string) ([]*domain.PendingItem, error) {
	return s.pending.ListByProject(ctx, projectID)
}

func (s *pendingService) Update(ctx context.Context, p *domain.PendingItem) error {
	p.UpdatedAt = time.Now().UTC()
	return s.pending.Update(ctx, p)
}

// MarkReplied flags the item as answered and stamps the completion date if it
// is not already set.
func (s *pendingService) MarkReplied(ctx context.Context, id string) error {
	p, err := s.pending.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.IsReplied = true
	if p.ActualCompletion == nil {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		p.ActualCompletion = &now
	}
	p.UpdatedAt = time.Now().UTC()
	return s.pending.Update(ctx, p)
}

func (s *pendingService) Delete(ctx context.Context, id string) error {
	if _, err := s.pending.GetByID(ctx, id); err != nil {
		return err
	}
	return s.pending.Delete(ctx, id)
}

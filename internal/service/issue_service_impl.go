package service

import (
	"context"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/google/uuid"
)

type issueService struct {
	issues repository.IssueRepo
}

func NewIssueService(issues repository.IssueRepo) IssueService {
	return &issueService{issues: issues}
}

func (s *issueService) Create(ctx context.Context, i *domain.Issue) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Number == "" {
		number, err := s.issues.NextNumber(ctx, i.ProjectID)
		if err != nil {
			return err
		}
		i.Number = number
	}
	if i.Status == "" {
		i.Status = "open"
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	return s.issues.Create(ctx, i)
}

func (s *issueService) GetByNumber(ctx context.Context, projectID, number string) (*domain.Issue, error) {
	return s.issues.GetByNumber(ctx, projectID, number)
}

func (s *issueService) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return s.issues.ListByProject(ctx, projectID)
}

func (s *issueService) Update(ctx context.Context, i *domain.Issue) error {
	i.UpdatedAt = time.Now().UTC()
	return s.issues.Update(ctx, i)
}

// Resolve closes an issue by number, recording the resolution text and the
// resolution date.
func (s *issueService) Resolve(ctx context.Context, projectID, number, resolution string) error {
	i, err := s.issues.GetByNumber(ctx, projectID, number)
	if err != nil {
		return err
	}
	i.Status = "resolved"
	i.Resolution = resolution
	now := time.Now().UTC()
	resolvedOn := now.Truncate(24 * time.Hour)
	i.ActualResolution = &resolvedOn
	i.UpdatedAt = now
	return s.issues.Update(ctx, i)
}

func (s *issueService) Delete(ctx context.Context, id string) error {
	if _, err := s.issues.GetByID(ctx, id); err != nil {
		return err
	}
	return s.issues.Delete(ctx, id)
}

package repository

import (
	"context"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// ItemFilter narrows a tracking item listing. Zero values mean "no filter"
// except IncludeInternal, which must be set to include internal items.
type ItemFilter struct {
	ProjectID        string
	Status           domain.TrackingStatus
	IncludeInternal  bool
	ExcludeCompleted bool
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TrackingItemRepo interface {
	Create(ctx context.Context, item *domain.TrackingItem) error
	GetByID(ctx context.Context, itemID string) (*domain.TrackingItem, error)
	List(ctx context.Context, filter ItemFilter) ([]*domain.TrackingItem, error)
	Count(ctx context.Context, filter ItemFilter) (int, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.TrackingItem, error)
	Update(ctx context.Context, item *domain.TrackingItem) error
	Delete(ctx context.Context, itemID string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.ItemDependency) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	ListPredecessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error)
	ListSuccessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error)
}

type PendingRepo interface {
	Create(ctx context.Context, p *domain.PendingItem) error
	GetByID(ctx context.Context, id string) (*domain.PendingItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.PendingItem, error)
	Update(ctx context.Context, p *domain.PendingItem) error
	Delete(ctx context.Context, id string) error
}

type IssueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	GetByNumber(ctx context.Context, projectID, number string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	NextNumber(ctx context.Context, projectID string) (string, error)
	Update(ctx context.Context, i *domain.Issue) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	GetSystemSetting(ctx context.Context, key string) (*domain.SystemSetting, error)
	ListSystemSettings(ctx context.Context) ([]*domain.SystemSetting, error)
	UpsertSystemSetting(ctx context.Context, s *domain.SystemSetting) error

	ListProjectSettings(ctx context.Context, projectID, key string) ([]*domain.ProjectSetting, error)
	AddProjectSetting(ctx context.Context, s *domain.ProjectSetting) error
	DeactivateProjectSetting(ctx context.Context, id int64) error
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.Holiday) error
	ListByYear(ctx context.Context, year int) ([]*domain.Holiday, error)
	ListAll(ctx context.Context) ([]*domain.Holiday, error)
	DeleteByDate(ctx context.Context, date string) error
}

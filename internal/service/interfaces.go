package service

import (
	"context"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/schedule"
)

// ItemView pairs a stored tracking item with metrics derived at read time.
// Metrics are never persisted; every read computes them from the current
// settings snapshot and holiday calendar.
type ItemView struct {
	Item    *domain.TrackingItem
	Metrics schedule.Metrics
}

// ListOptions controls pagination of a natural-sorted item listing.
// Zero Limit means no limit.
type ListOptions struct {
	Offset int
	Limit  int
}

// ListResult is a page of items plus the total count before pagination.
type ListResult struct {
	Items []ItemView
	Total int
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type WBSService interface {
	Create(ctx context.Context, item *domain.TrackingItem, parentRef string) error
	Get(ctx context.Context, itemID string) (*ItemView, error)
	List(ctx context.Context, filter repository.ItemFilter, opts ListOptions) (*ListResult, error)
	Tree(ctx context.Context, projectID string, includeInternal bool) ([]*schedule.TreeNode, error)
	Children(ctx context.Context, parentID string) ([]ItemView, error)
	Update(ctx context.Context, item *domain.TrackingItem) error
	Delete(ctx context.Context, itemID string) error
}

type SettingsService interface {
	GetString(ctx context.Context, key, fallback string) string
	GetInt(ctx context.Context, key string, fallback int) int
	GetBool(ctx context.Context, key string, fallback bool) bool
	Set(ctx context.Context, key, value string, typ domain.SettingType, description string) error
	ListSettings(ctx context.Context) ([]*domain.SystemSetting, error)

	ScheduleConfig(ctx context.Context) schedule.Config
	Calendar(ctx context.Context) *schedule.Calendar

	AddHoliday(ctx context.Context, h *domain.Holiday) error
	ListHolidays(ctx context.Context, year int) ([]*domain.Holiday, error)
	RemoveHoliday(ctx context.Context, date string) error

	ListOwnerUnits(ctx context.Context, projectID string) ([]*domain.ProjectSetting, error)
	AddOwnerUnit(ctx context.Context, projectID, unit string, order int) error
	RemoveOwnerUnit(ctx context.Context, id int64) error
}

type PendingService interface {
	Create(ctx context.Context, p *domain.PendingItem) error
	GetByID(ctx context.Context, id string) (*domain.PendingItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.PendingItem, error)
	Update(ctx context.Context, p *domain.PendingItem) error
	MarkReplied(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type IssueService interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByNumber(ctx context.Context, projectID, number string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	Update(ctx context.Context, i *domain.Issue) error
	Resolve(ctx context.Context, projectID, number, resolution string) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	Add(ctx context.Context, predecessorID, successorID string) error
	Remove(ctx context.Context, predecessorID, successorID string) error
	ListPredecessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error)
	ListSuccessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error)
}

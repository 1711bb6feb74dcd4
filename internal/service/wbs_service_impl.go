package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/schedule"
)

type wbsService struct {
	items    repository.TrackingItemRepo
	settings SettingsService
}

func NewWBSService(items repository.TrackingItemRepo, settings SettingsService) WBSService {
	return &wbsService{items: items, settings: settings}
}

// snapshot captures the inputs for one metric computation pass. Every read
// takes exactly one snapshot so all items in a response share the same
// configuration, calendar, and reference date.
type snapshot struct {
	cfg   schedule.Config
	cal   *schedule.Calendar
	today time.Time
}

func (s *wbsService) takeSnapshot(ctx context.Context) snapshot {
	return snapshot{
		cfg:   s.settings.ScheduleConfig(ctx),
		cal:   s.settings.Calendar(ctx),
		today: time.Now().UTC(),
	}
}

func (snap snapshot) view(item *domain.TrackingItem) ItemView {
	return ItemView{
		Item:    item,
		Metrics: schedule.ComputeMetrics(item, snap.cfg, snap.cal, snap.today),
	}
}

func (s *wbsService) Create(ctx context.Context, item *domain.TrackingItem, parentRef string) error {
	if item.ProjectID == "" {
		return fmt.Errorf("project ID is required")
	}
	if item.WBSID == "" {
		return fmt.Errorf("WBS ID is required")
	}
	item.ItemID = domain.ItemIDFor(item.ProjectID, item.WBSID)

	if parentRef != "" {
		parentID := domain.ResolveParentRef(item.ProjectID, parentRef)
		if _, err := s.items.GetByID(ctx, parentID); err != nil {
			return fmt.Errorf("parent %s: %w", parentRef, err)
		}
		item.ParentID = &parentID
	}

	if item.OwnerUnit != "" && item.OwnerKind == "" {
		owner := domain.ClassifyOwner(item.OwnerUnit)
		item.OwnerKind = owner.Kind
		item.PrimaryOwner = owner.Primary
		item.SecondaryOwner = owner.Secondary
	}
	if item.ItemType == "" {
		item.ItemType = domain.ItemTypeWBS
	}
	if item.Status == "" {
		item.Status = domain.StatusNotStarted
	}
	if item.Source == "" {
		item.Source = domain.SourceManual
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.items.Create(ctx, item)
}

func (s *wbsService) Get(ctx context.Context, itemID string) (*ItemView, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view := s.takeSnapshot(ctx).view(item)
	return &view, nil
}

func (s *wbsService) List(ctx context.Context, filter repository.ItemFilter, opts ListOptions) (*ListResult, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return schedule.CompareWBSIDs(items[i].WBSID, items[j].WBSID) < 0
	})

	total := len(items)
	items = paginate(items, opts)

	snap := s.takeSnapshot(ctx)
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = snap.view(item)
	}
	return &ListResult{Items: views, Total: total}, nil
}

func (s *wbsService) Tree(ctx context.Context, projectID string, includeInternal bool) ([]*schedule.TreeNode, error) {
	items, err := s.items.List(ctx, repository.ItemFilter{
		ProjectID:       projectID,
		IncludeInternal: includeInternal,
	})
	if err != nil {
		return nil, err
	}

	roots := schedule.BuildTree(items)
	snap := s.takeSnapshot(ctx)
	for _, node := range schedule.Flatten(roots) {
		node.Metrics = schedule.ComputeMetrics(node.Item, snap.cfg, snap.cal, snap.today)
	}
	return roots, nil
}

func (s *wbsService) Children(ctx context.Context, parentID string) ([]ItemView, error) {
	items, err := s.items.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return schedule.CompareWBSIDs(items[i].WBSID, items[j].WBSID) < 0
	})

	snap := s.takeSnapshot(ctx)
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = snap.view(item)
	}
	return views, nil
}

func (s *wbsService) Update(ctx context.Context, item *domain.TrackingItem) error {
	if _, err := s.items.GetByID(ctx, item.ItemID); err != nil {
		return err
	}
	if item.OwnerUnit != "" {
		owner := domain.ClassifyOwner(item.OwnerUnit)
		item.OwnerKind = owner.Kind
		item.PrimaryOwner = owner.Primary
		item.SecondaryOwner = owner.Secondary
	}
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *wbsService) Delete(ctx context.Context, itemID string) error {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

func paginate(items []*domain.TrackingItem, opts ListOptions) []*domain.TrackingItem {
	if opts.Offset > 0 {
		if opts.Offset >= len(items) {
			return nil
		}
		items = items[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}

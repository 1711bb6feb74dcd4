package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TrackingItem options
type ItemOption func(*domain.TrackingItem)

func WithParentWBS(wbsID string) ItemOption {
	return func(item *domain.TrackingItem) {
		pid := domain.ItemIDFor(item.ProjectID, wbsID)
		item.ParentID = &pid
	}
}

func WithItemStatus(s domain.TrackingStatus) ItemOption {
	return func(item *domain.TrackingItem) {
		item.Status = s
	}
}

func WithOriginalPlan(start, end time.Time) ItemOption {
	return func(item *domain.TrackingItem) {
		item.OriginalPlannedStart = &start
		item.OriginalPlannedEnd = &end
	}
}

func WithRevisedPlan(start, end time.Time) ItemOption {
	return func(item *domain.TrackingItem) {
		item.RevisedPlannedStart = &start
		item.RevisedPlannedEnd = &end
	}
}

func WithProgress(pct int) ItemOption {
	return func(item *domain.TrackingItem) {
		item.ActualProgress = pct
	}
}

func WithOwnerUnit(unit string) ItemOption {
	return func(item *domain.TrackingItem) {
		item.OwnerUnit = unit
		owner := domain.ClassifyOwner(unit)
		item.OwnerKind = owner.Kind
		item.PrimaryOwner = owner.Primary
		item.SecondaryOwner = owner.Secondary
	}
}

func WithInternal() ItemOption {
	return func(item *domain.TrackingItem) {
		item.IsInternal = true
	}
}

func NewTestItem(projectID, wbsID string, opts ...ItemOption) *domain.TrackingItem {
	now := time.Now().UTC()
	item := &domain.TrackingItem{
		ItemID:    domain.ItemIDFor(projectID, wbsID),
		ProjectID: projectID,
		WBSID:     wbsID,
		TaskName:  "task " + wbsID,
		ItemType:  domain.ItemTypeWBS,
		Status:    domain.StatusNotStarted,
		Source:    domain.SourceManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

// PendingItem options
type PendingOption func(*domain.PendingItem)

func WithPendingStatus(s string) PendingOption {
	return func(p *domain.PendingItem) {
		p.Status = s
	}
}

func WithExpectedCompletion(d time.Time) PendingOption {
	return func(p *domain.PendingItem) {
		p.ExpectedCompletion = &d
	}
}

func NewTestPending(projectID, description string, opts ...PendingOption) *domain.PendingItem {
	now := time.Now().UTC()
	p := &domain.PendingItem{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Description: description,
		Status:      "open",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Issue options
type IssueOption func(*domain.Issue)

func WithIssueNumber(n string) IssueOption {
	return func(i *domain.Issue) {
		i.Number = n
	}
}

func WithIssueStatus(s string) IssueOption {
	return func(i *domain.Issue) {
		i.Status = s
	}
}

func NewTestIssue(projectID, title string, opts ...IssueOption) *domain.Issue {
	now := time.Now().UTC()
	i := &domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Number:    "ISS-001",
		Title:     title,
		Status:    "open",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// TrackingItem is a single WBS node within a project. Plan dates come in two
// pairs: the original plan and an optional revised plan. Schedule metrics are
// never stored on the item; they are derived on every read from these fields.
type TrackingItem struct {
	ItemID    string // project-scoped unique ID: "<projectID>_<wbsID>"
	ProjectID string
	WBSID     string  // dotted ordinal, e.g. "1.2.3"
	ParentID  *string // item_id form, nil for roots
	TaskName  string
	ItemType  ItemType
	Category  string

	OwnerUnit      string
	OwnerKind      OwnerKind
	PrimaryOwner   string
	SecondaryOwner string

	OriginalPlannedStart *time.Time
	OriginalPlannedEnd   *time.Time
	RevisedPlannedStart  *time.Time
	RevisedPlannedEnd    *time.Time
	ActualStart          *time.Time
	ActualEnd            *time.Time

	WorkDays       *int
	ActualProgress int // 0..100
	Status         TrackingStatus
	Notes          string
	AlertFlag      bool
	IsInternal     bool

	Source     ItemSource
	SourceDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemIDFor builds the project-scoped item ID for a WBS identifier.
func ItemIDFor(projectID, wbsID string) string {
	return fmt.Sprintf("%s_%s", projectID, wbsID)
}

// Level is the depth implied by the dotted WBS identifier ("1.2.3" => 3).
func (t *TrackingItem) Level() int {
	return len(strings.Split(t.WBSID, "."))
}

// ResolveParentRef normalizes a parent reference to item_id form. References
// given in dotted WBS form (no underscore) are qualified with the project ID;
// references already in item_id form pass through unchanged.
func ResolveParentRef(projectID, ref string) string {
	if ref == "" {
		return ""
	}
	if !strings.Contains(ref, "_") {
		return ItemIDFor(projectID, ref)
	}
	return ref
}

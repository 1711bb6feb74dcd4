package domain

import "time"

// PendingItem is a dated follow-up task outside the WBS hierarchy, typically a
// question waiting on a reply from a contact.
type PendingItem struct {
	ID                 string
	ProjectID          string
	TaskDate           *time.Time
	SourceType         string
	ContactInfo        string
	Description        string
	ExpectedCompletion *time.Time
	IsReplied          bool
	ActualCompletion   *time.Time
	HandlingNotes      string
	RelatedWBS         string // dotted WBS ID, informational only
	Status             string
	Priority           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package domain

import "time"

// Issue is a tracked problem report attached to a project.
type Issue struct {
	ID               string
	ProjectID        string
	Number           string // display number, e.g. "ISS-003", unique per project
	Title            string
	Description      string
	Type             string
	Category         string
	Severity         string
	Priority         string
	ReportedBy       string
	ReportedDate     *time.Time
	AssignedTo       string
	Status           string
	Resolution       string
	TargetResolution *time.Time
	ActualResolution *time.Time
	IsEscalated      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

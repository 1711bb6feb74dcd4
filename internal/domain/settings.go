package domain

import "time"

// SystemSetting is a typed key/value pair controlling application behavior.
// Values are stored as strings and interpreted per Type.
type SystemSetting struct {
	Key         string
	Value       string
	Type        SettingType
	Description string
	UpdatedAt   time.Time
}

// Well-known system setting keys used by the schedule engine.
const (
	SettingIncludeWeekends      = "include_weekends"
	SettingOverdueWarningDays   = "overdue_warning_days"
	SettingProgressLagThreshold = "progress_lag_threshold"
)

// ProjectSetting is a per-project list value, such as an owner unit offered in
// dropdowns. Rows are soft-deleted via IsActive.
type ProjectSetting struct {
	ID           int64
	ProjectID    string
	Key          string
	Value        string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SettingOwnerUnit is the project setting key holding owner unit list values.
const SettingOwnerUnit = "owner_unit"

// Holiday is a single non-working calendar date. Year duplicates the year of
// Date so holiday lists can be filtered cheaply.
type Holiday struct {
	ID        int64
	Year      int
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

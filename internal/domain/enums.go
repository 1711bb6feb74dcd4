package domain

// TrackingStatus is the status label carried by a tracking item. Labels come
// from imported data and settings, so storage does not constrain them; the
// constants below are the values the engine must recognize by exact match.
type TrackingStatus string

const (
	StatusNotStarted TrackingStatus = "未開始"
	StatusInProgress TrackingStatus = "進行中"
	StatusCompleted  TrackingStatus = "已完成"
	StatusCancelled  TrackingStatus = "已取消"
)

// IsClosed reports whether the status counts as finished work for filtering
// purposes (completed or cancelled).
func (s TrackingStatus) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ItemType string

const (
	ItemTypeWBS ItemType = "WBS"
)

type ItemSource string

const (
	SourceManual    ItemSource = "Manual"
	SourceCSVImport ItemSource = "CSV"
)

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectPaused ProjectStatus = "paused"
	ProjectClosed ProjectStatus = "closed"
)

// SettingType describes how a system setting value string is interpreted.
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
)

package schedule

import (
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// Config is the snapshot of schedule-related settings used for one metrics
// computation. IncludeWeekends keeps its historical meaning: true counts every
// calendar day except holidays, false additionally drops weekends.
type Config struct {
	IncludeWeekends      bool
	OverdueWarningDays   int
	ProgressLagThreshold int
}

// DefaultConfig returns the settings used when the settings store has no
// stored value for a key.
func DefaultConfig() Config {
	return Config{
		IncludeWeekends:      true,
		OverdueWarningDays:   0,
		ProgressLagThreshold: 10,
	}
}

// Metrics holds the schedule-health values derived from a tracking item's
// stored dates and progress. Metrics are ephemeral: recomputed on every read,
// never persisted.
type Metrics struct {
	EstimatedProgress int // 0..100, floor of elapsed/total work days
	ProgressVariance  int // actual - estimated, negative means behind
	IsOverdue         bool
	IsBehindSchedule  bool
}

// ComputeMetrics derives schedule metrics for one item. Callers must pass a
// single `today` value per computation so the overdue and estimated-progress
// checks agree about the current date. The function is pure: no clock reads,
// no I/O, safe for concurrent use.
func ComputeMetrics(item *domain.TrackingItem, cfg Config, cal *Calendar, today time.Time) Metrics {
	today = truncateToDate(today)

	estimated := estimatedProgress(item, cfg, cal, today)
	variance := item.ActualProgress - estimated

	m := Metrics{
		EstimatedProgress: estimated,
		ProgressVariance:  variance,
	}

	// Completed items are never flagged, whatever their dates say.
	if item.Status == domain.StatusCompleted {
		return m
	}

	if variance < 0 && -variance >= cfg.ProgressLagThreshold {
		m.IsBehindSchedule = true
	}

	if checkDate := coalesceDate(item.RevisedPlannedEnd, item.OriginalPlannedEnd); checkDate != nil {
		warningDate := truncateToDate(*checkDate).AddDate(0, 0, -cfg.OverdueWarningDays)
		m.IsOverdue = today.After(warningDate)
	}

	return m
}

// estimatedProgress computes the expected completion percentage implied by
// elapsed work days. The revised plan pair wins when both dates are present;
// otherwise the original pair is used; with neither, progress is 0.
func estimatedProgress(item *domain.TrackingItem, cfg Config, cal *Calendar, today time.Time) int {
	var start, end *time.Time
	switch {
	case item.RevisedPlannedStart != nil && item.RevisedPlannedEnd != nil:
		start, end = item.RevisedPlannedStart, item.RevisedPlannedEnd
	case item.OriginalPlannedStart != nil && item.OriginalPlannedEnd != nil:
		start, end = item.OriginalPlannedStart, item.OriginalPlannedEnd
	default:
		return 0
	}

	s := truncateToDate(*start)
	e := truncateToDate(*end)

	// End checked first: a single-day plan whose date is today reads as done.
	if !today.Before(e) {
		return 100
	}
	if !today.After(s) {
		return 0
	}

	total := CountWorkDays(s, e, cfg.IncludeWeekends, cal)
	if total == 0 {
		return 0
	}
	elapsed := CountWorkDays(s, today, cfg.IncludeWeekends, cal)
	return elapsed * 100 / total
}

func coalesceDate(dates ...*time.Time) *time.Time {
	for _, d := range dates {
		if d != nil {
			return d
		}
	}
	return nil
}

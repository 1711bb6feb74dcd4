package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/schedule"
)

type settingsService struct {
	settings repository.SettingsRepo
	holidays repository.HolidayRepo
}

func NewSettingsService(settings repository.SettingsRepo, holidays repository.HolidayRepo) SettingsService {
	return &settingsService{settings: settings, holidays: holidays}
}

// truthyValues are the accepted spellings of boolean true in stored settings.
var truthyValues = map[string]bool{"true": true, "1": true, "yes": true}

func (s *settingsService) GetString(ctx context.Context, key, fallback string) string {
	setting, err := s.settings.GetSystemSetting(ctx, key)
	if err != nil {
		return fallback
	}
	return setting.Value
}

func (s *settingsService) GetInt(ctx context.Context, key string, fallback int) int {
	setting, err := s.settings.GetSystemSetting(ctx, key)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(setting.Value))
	if err != nil {
		return fallback
	}
	return n
}

func (s *settingsService) GetBool(ctx context.Context, key string, fallback bool) bool {
	setting, err := s.settings.GetSystemSetting(ctx, key)
	if err != nil {
		return fallback
	}
	return truthyValues[strings.ToLower(strings.TrimSpace(setting.Value))]
}

func (s *settingsService) Set(ctx context.Context, key, value string, typ domain.SettingType, description string) error {
	if typ == "" {
		typ = domain.SettingString
	}
	return s.settings.UpsertSystemSetting(ctx, &domain.SystemSetting{
		Key:         key,
		Value:       value,
		Type:        typ,
		Description: description,
	})
}

func (s *settingsService) ListSettings(ctx context.Context) ([]*domain.SystemSetting, error) {
	return s.settings.ListSystemSettings(ctx)
}

// ScheduleConfig assembles the schedule engine configuration from stored
// settings. Missing or malformed values fall back to the engine defaults, so
// an empty settings table still yields a usable configuration.
func (s *settingsService) ScheduleConfig(ctx context.Context) schedule.Config {
	cfg := schedule.DefaultConfig()
	cfg.IncludeWeekends = s.GetBool(ctx, domain.SettingIncludeWeekends, cfg.IncludeWeekends)
	cfg.OverdueWarningDays = s.GetInt(ctx, domain.SettingOverdueWarningDays, cfg.OverdueWarningDays)
	cfg.ProgressLagThreshold = s.GetInt(ctx, domain.SettingProgressLagThreshold, cfg.ProgressLagThreshold)
	return cfg
}

// Calendar loads all stored holidays. A storage failure degrades to an empty
// calendar rather than blocking metric computation.
func (s *settingsService) Calendar(ctx context.Context) *schedule.Calendar {
	holidays, err := s.holidays.ListAll(ctx)
	if err != nil {
		return schedule.NewCalendar(nil)
	}
	dates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return schedule.NewCalendar(dates)
}

func (s *settingsService) AddHoliday(ctx context.Context, h *domain.Holiday) error {
	if h.Year == 0 {
		h.Year = h.Date.Year()
	}
	return s.holidays.Create(ctx, h)
}

func (s *settingsService) ListHolidays(ctx context.Context, year int) ([]*domain.Holiday, error) {
	if year == 0 {
		return s.holidays.ListAll(ctx)
	}
	return s.holidays.ListByYear(ctx, year)
}

func (s *settingsService) RemoveHoliday(ctx context.Context, date string) error {
	return s.holidays.DeleteByDate(ctx, date)
}

func (s *settingsService) ListOwnerUnits(ctx context.Context, projectID string) ([]*domain.ProjectSetting, error) {
	return s.settings.ListProjectSettings(ctx, projectID, domain.SettingOwnerUnit)
}

func (s *settingsService) AddOwnerUnit(ctx context.Context, projectID, unit string, order int) error {
	return s.settings.AddProjectSetting(ctx, &domain.ProjectSetting{
		ProjectID:    projectID,
		Key:          domain.SettingOwnerUnit,
		Value:        unit,
		DisplayOrder: order,
	})
}

func (s *settingsService) RemoveOwnerUnit(ctx context.Context, id int64) error {
	return s.settings.DeactivateProjectSetting(ctx, id)
}

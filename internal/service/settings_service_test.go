package service

import (
	"context"
	"testing"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_TypedGetters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.settings.Set(ctx, "report_title", "Weekly", domain.SettingString, ""))
	assert.Equal(t, "Weekly", env.settings.GetString(ctx, "report_title", "fallback"))
	assert.Equal(t, "fallback", env.settings.GetString(ctx, "missing", "fallback"))

	require.NoError(t, env.settings.Set(ctx, "max_rows", "250", domain.SettingNumber, ""))
	assert.Equal(t, 250, env.settings.GetInt(ctx, "max_rows", 10))
	assert.Equal(t, 10, env.settings.GetInt(ctx, "missing", 10))

	// Malformed numbers fall back instead of failing.
	require.NoError(t, env.settings.Set(ctx, "bad_number", "lots", domain.SettingNumber, ""))
	assert.Equal(t, 7, env.settings.GetInt(ctx, "bad_number", 7))

	for value, want := range map[string]bool{"true": true, "1": true, "yes": true, "false": false, "0": false, "no": false} {
		require.NoError(t, env.settings.Set(ctx, "flag", value, domain.SettingBoolean, ""))
		assert.Equal(t, want, env.settings.GetBool(ctx, "flag", !want), "value %q", value)
	}
}

func TestSettingsService_ScheduleConfigDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Seeded defaults.
	cfg := env.settings.ScheduleConfig(ctx)
	assert.True(t, cfg.IncludeWeekends)
	assert.Equal(t, 0, cfg.OverdueWarningDays)
	assert.Equal(t, 10, cfg.ProgressLagThreshold)

	require.NoError(t, env.settings.Set(ctx, domain.SettingIncludeWeekends, "false", domain.SettingBoolean, ""))
	require.NoError(t, env.settings.Set(ctx, domain.SettingOverdueWarningDays, "3", domain.SettingNumber, ""))
	cfg = env.settings.ScheduleConfig(ctx)
	assert.False(t, cfg.IncludeWeekends)
	assert.Equal(t, 3, cfg.OverdueWarningDays)
}

func TestSettingsService_HolidaysAndCalendar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	newYear := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.settings.AddHoliday(ctx, &domain.Holiday{Date: newYear, Name: "元旦"}))

	// Year defaults from the date.
	listed, err := env.settings.ListHolidays(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2024, listed[0].Year)

	cal := env.settings.Calendar(ctx)
	assert.True(t, cal.IsHoliday(newYear))
	assert.False(t, cal.IsHoliday(newYear.AddDate(0, 0, 1)))

	require.NoError(t, env.settings.RemoveHoliday(ctx, "2024-01-01"))
	cal = env.settings.Calendar(ctx)
	assert.False(t, cal.IsHoliday(newYear))
}

func TestSettingsService_OwnerUnits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	require.NoError(t, env.settings.AddOwnerUnit(ctx, project.ID, "企劃部", 1))
	require.NoError(t, env.settings.AddOwnerUnit(ctx, project.ID, "客戶", 2))

	units, err := env.settings.ListOwnerUnits(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "企劃部", units[0].Value)

	require.NoError(t, env.settings.RemoveOwnerUnit(ctx, units[0].ID))
	units, err = env.settings.ListOwnerUnits(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, units, 1)
}

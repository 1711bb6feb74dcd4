package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"projects", "tracking_items", "item_dependencies",
		"pending_items", "issue_tracking",
		"system_settings", "project_settings", "holidays",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_SeedsScheduleDefaults(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var value, typ string
	err = database.QueryRow(
		`SELECT setting_value, setting_type FROM system_settings WHERE setting_key = 'include_weekends'`).
		Scan(&value, &typ)
	require.NoError(t, err)
	assert.Equal(t, "true", value)
	assert.Equal(t, "boolean", typ)

	err = database.QueryRow(
		`SELECT setting_value FROM system_settings WHERE setting_key = 'progress_lag_threshold'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "10", value)
}

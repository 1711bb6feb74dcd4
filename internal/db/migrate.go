package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date  TEXT,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','closed')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id) WHERE short_id != ''`,

	// Status and category are opaque labels supplied by imported data, so no
	// CHECK constraints on them.
	`CREATE TABLE IF NOT EXISTS tracking_items (
		item_id                TEXT PRIMARY KEY,
		project_id             TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		wbs_id                 TEXT NOT NULL,
		parent_id              TEXT,
		task_name              TEXT NOT NULL,
		item_type              TEXT NOT NULL DEFAULT 'WBS',
		category               TEXT NOT NULL DEFAULT '',
		owner_unit             TEXT NOT NULL DEFAULT '',
		owner_kind             TEXT NOT NULL DEFAULT '',
		primary_owner          TEXT NOT NULL DEFAULT '',
		secondary_owner        TEXT NOT NULL DEFAULT '',
		original_planned_start TEXT,
		original_planned_end   TEXT,
		revised_planned_start  TEXT,
		revised_planned_end    TEXT,
		actual_start_date      TEXT,
		actual_end_date        TEXT,
		work_days              INTEGER,
		actual_progress        INTEGER NOT NULL DEFAULT 0,
		status                 TEXT NOT NULL DEFAULT '未開始',
		notes                  TEXT NOT NULL DEFAULT '',
		alert_flag             INTEGER NOT NULL DEFAULT 0,
		is_internal            INTEGER NOT NULL DEFAULT 0,
		source                 TEXT NOT NULL DEFAULT 'Manual',
		source_date            TEXT,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tracking_items_project ON tracking_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_items_parent ON tracking_items(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_items_status ON tracking_items(status)`,

	`CREATE TABLE IF NOT EXISTS item_dependencies (
		predecessor_id TEXT NOT NULL REFERENCES tracking_items(item_id) ON DELETE CASCADE,
		successor_id   TEXT NOT NULL REFERENCES tracking_items(item_id) ON DELETE CASCADE,
		PRIMARY KEY (predecessor_id, successor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS pending_items (
		id                       TEXT PRIMARY KEY,
		project_id               TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_date                TEXT,
		source_type              TEXT NOT NULL DEFAULT '',
		contact_info             TEXT NOT NULL DEFAULT '',
		description              TEXT NOT NULL DEFAULT '',
		expected_completion_date TEXT,
		is_replied               INTEGER NOT NULL DEFAULT 0,
		actual_completion_date   TEXT,
		handling_notes           TEXT NOT NULL DEFAULT '',
		related_wbs              TEXT NOT NULL DEFAULT '',
		status                   TEXT NOT NULL DEFAULT '',
		priority                 TEXT NOT NULL DEFAULT '',
		created_at               TEXT NOT NULL,
		updated_at               TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pending_items_project ON pending_items(project_id)`,

	`CREATE TABLE IF NOT EXISTS issue_tracking (
		id                     TEXT PRIMARY KEY,
		project_id             TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		issue_number           TEXT NOT NULL,
		issue_title            TEXT NOT NULL,
		issue_description      TEXT NOT NULL DEFAULT '',
		issue_type             TEXT NOT NULL DEFAULT '',
		issue_category         TEXT NOT NULL DEFAULT '',
		severity               TEXT NOT NULL DEFAULT '',
		priority               TEXT NOT NULL DEFAULT '',
		reported_by            TEXT NOT NULL DEFAULT '',
		reported_date          TEXT,
		assigned_to            TEXT NOT NULL DEFAULT '',
		status                 TEXT NOT NULL DEFAULT '',
		resolution             TEXT NOT NULL DEFAULT '',
		target_resolution_date TEXT,
		actual_resolution_date TEXT,
		is_escalated           INTEGER NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_issue_tracking_project ON issue_tracking(project_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_issue_tracking_number ON issue_tracking(project_id, issue_number)`,

	`CREATE TABLE IF NOT EXISTS system_settings (
		setting_key   TEXT PRIMARY KEY,
		setting_value TEXT NOT NULL,
		setting_type  TEXT NOT NULL DEFAULT 'string'
		              CHECK(setting_type IN ('string','number','boolean')),
		description   TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	// Seed schedule engine defaults
	`INSERT OR IGNORE INTO system_settings (setting_key, setting_value, setting_type, description) VALUES
		('include_weekends', 'true', 'boolean', 'Count weekend days as work days (holidays always excluded)'),
		('overdue_warning_days', '0', 'number', 'Flag items overdue this many days before the planned end'),
		('progress_lag_threshold', '10', 'number', 'Minimum negative variance before an item counts as behind schedule')`,

	`CREATE TABLE IF NOT EXISTS project_settings (
		setting_id    INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		setting_key   TEXT NOT NULL,
		setting_value TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_active     INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at    TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_settings_key ON project_settings(project_id, setting_key)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		holiday_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		year         INTEGER NOT NULL,
		holiday_date TEXT NOT NULL,
		holiday_name TEXT NOT NULL,
		created_at   TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holidays_year ON holidays(year)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_date ON holidays(holiday_date)`,
}

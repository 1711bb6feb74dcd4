package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) GetSystemSetting(ctx context.Context, key string) (*domain.SystemSetting, error) {
	query := `SELECT setting_key, setting_value, setting_type, description, updated_at
		FROM system_settings WHERE setting_key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var s domain.SystemSetting
	var typeStr, updatedAtStr string
	err := row.Scan(&s.Key, &s.Value, &typeStr, &s.Description, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("system setting %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning system setting: %w", err)
	}
	s.Type = domain.SettingType(typeStr)
	s.UpdatedAt = parseSettingTime(updatedAtStr)
	return &s, nil
}

func (r *SQLiteSettingsRepo) ListSystemSettings(ctx context.Context) ([]*domain.SystemSetting, error) {
	query := `SELECT setting_key, setting_value, setting_type, description, updated_at
		FROM system_settings ORDER BY setting_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing system settings: %w", err)
	}
	defer rows.Close()

	var settings []*domain.SystemSetting
	for rows.Next() {
		var s domain.SystemSetting
		var typeStr, updatedAtStr string
		if err := rows.Scan(&s.Key, &s.Value, &typeStr, &s.Description, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning system setting row: %w", err)
		}
		s.Type = domain.SettingType(typeStr)
		s.UpdatedAt = parseSettingTime(updatedAtStr)
		settings = append(settings, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating system settings: %w", err)
	}
	return settings, nil
}

func (r *SQLiteSettingsRepo) UpsertSystemSetting(ctx context.Context, s *domain.SystemSetting) error {
	query := `INSERT INTO system_settings (setting_key, setting_value, setting_type, description, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			setting_type = excluded.setting_type,
			description = excluded.description,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.Key, s.Value, string(s.Type), s.Description, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting system setting: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) ListProjectSettings(ctx context.Context, projectID, key string) ([]*domain.ProjectSetting, error) {
	query := `SELECT setting_id, project_id, setting_key, setting_value, display_order, is_active, created_at, updated_at
		FROM project_settings
		WHERE project_id = ? AND setting_key = ? AND is_active = 1
		ORDER BY display_order, setting_id`
	rows, err := r.db.QueryContext(ctx, query, projectID, key)
	if err != nil {
		return nil, fmt.Errorf("listing project settings: %w", err)
	}
	defer rows.Close()

	var settings []*domain.ProjectSetting
	for rows.Next() {
		var s domain.ProjectSetting
		var activeInt int
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Key, &s.Value, &s.DisplayOrder,
			&activeInt, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning project setting row: %w", err)
		}
		s.IsActive = intToBool(activeInt)
		s.CreatedAt = parseSettingTime(createdAtStr)
		s.UpdatedAt = parseSettingTime(updatedAtStr)
		settings = append(settings, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project settings: %w", err)
	}
	return settings, nil
}

func (r *SQLiteSettingsRepo) AddProjectSetting(ctx context.Context, s *domain.ProjectSetting) error {
	now := nowUTC()
	query := `INSERT INTO project_settings (project_id, setting_key, setting_value, display_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		s.ProjectID, s.Key, s.Value, s.DisplayOrder, now, now)
	if err != nil {
		return fmt.Errorf("inserting project setting: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project setting id: %w", err)
	}
	s.ID = id
	s.IsActive = true
	return nil
}

func (r *SQLiteSettingsRepo) DeactivateProjectSetting(ctx context.Context, id int64) error {
	query := `UPDATE project_settings SET is_active = 0, updated_at = ? WHERE setting_id = ?`
	result, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating project setting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deactivated project setting: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project setting %d: %w", id, ErrNotFound)
	}
	return nil
}

// parseSettingTime parses timestamps that may come from the Go layer (RFC3339)
// or from SQLite's datetime('now') defaults. Unparseable values degrade to the
// zero time.
func parseSettingTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

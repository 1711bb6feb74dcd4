package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db *sql.DB
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(db *sql.DB) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: db}
}

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	now := nowUTC()
	query := `INSERT INTO holidays (year, holiday_date, holiday_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		h.Year, h.Date.Format(dateLayout), h.Name, now, now)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading holiday id: %w", err)
	}
	h.ID = id
	return nil
}

func (r *SQLiteHolidayRepo) ListByYear(ctx context.Context, year int) ([]*domain.Holiday, error) {
	query := `SELECT holiday_id, year, holiday_date, holiday_name, created_at, updated_at
		FROM holidays WHERE year = ? ORDER BY holiday_date`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("listing holidays for %d: %w", year, err)
	}
	defer rows.Close()
	return r.scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) ListAll(ctx context.Context) ([]*domain.Holiday, error) {
	query := `SELECT holiday_id, year, holiday_date, holiday_name, created_at, updated_at
		FROM holidays ORDER BY holiday_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()
	return r.scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) DeleteByDate(ctx context.Context, date string) error {
	query := `DELETE FROM holidays WHERE holiday_date = ?`
	result, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted holiday: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("holiday %s: %w", date, ErrNotFound)
	}
	return nil
}

func (r *SQLiteHolidayRepo) scanHolidays(rows *sql.Rows) ([]*domain.Holiday, error) {
	var holidays []*domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		var dateStr sql.NullString
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&h.ID, &h.Year, &dateStr, &h.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		// Rows with malformed dates are dropped so the calendar stays usable.
		parsed := parseNullableTime(dateStr, dateLayout)
		if parsed == nil {
			continue
		}
		h.Date = *parsed
		h.CreatedAt = parseSettingTime(createdAtStr)
		h.UpdatedAt = parseSettingTime(updatedAtStr)
		holidays = append(holidays, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

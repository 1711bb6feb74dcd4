package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// pendingColumns is the canonical SELECT column list for pending_items.
const pendingColumns = `id, project_id, task_date, source_type, contact_info, description,
		expected_completion_date, is_replied, actual_completion_date, handling_notes,
		related_wbs, status, priority, created_at, updated_at`

// SQLitePendingRepo implements PendingRepo using a SQLite database.
type SQLitePendingRepo struct {
	db *sql.DB
}

// NewSQLitePendingRepo creates a new SQLitePendingRepo.
func NewSQLitePendingRepo(db *sql.DB) *SQLitePendingRepo {
	return &SQLitePendingRepo{db: db}
}

func (r *SQLitePendingRepo) Create(ctx context.Context, p *domain.PendingItem) error {
	query := `INSERT INTO pending_items (id, project_id, task_date, source_type, contact_info, description,
		expected_completion_date, is_replied, actual_completion_date, handling_notes,
		related_wbs, status, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		nullableTimeToString(p.TaskDate, dateLayout),
		p.SourceType,
		p.ContactInfo,
		p.Description,
		nullableTimeToString(p.ExpectedCompletion, dateLayout),
		boolToInt(p.IsReplied),
		nullableTimeToString(p.ActualCompletion, dateLayout),
		p.HandlingNotes,
		p.RelatedWBS,
		p.Status,
		p.Priority,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pending item: %w", err)
	}
	return nil
}

func (r *SQLitePendingRepo) GetByID(ctx context.Context, id string) (*domain.PendingItem, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.PendingItem
	var taskDate, expected, actual sql.NullString
	var repliedInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.ProjectID, &taskDate, &p.SourceType, &p.ContactInfo, &p.Description,
		&expected, &repliedInt, &actual, &p.HandlingNotes,
		&p.RelatedWBS, &p.Status, &p.Priority, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pending item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning pending item: %w", err)
	}
	if err := r.populatePending(&p, taskDate, expected, actual, repliedInt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePendingRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.PendingItem, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_items WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing pending items: %w", err)
	}
	defer rows.Close()

	var items []*domain.PendingItem
	for rows.Next() {
		var p domain.PendingItem
		var taskDate, expected, actual sql.NullString
		var repliedInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&p.ID, &p.ProjectID, &taskDate, &p.SourceType, &p.ContactInfo, &p.Description,
			&expected, &repliedInt, &actual, &p.HandlingNotes,
			&p.RelatedWBS, &p.Status, &p.Priority, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning pending item row: %w", err)
		}
		if err := r.populatePending(&p, taskDate, expected, actual, repliedInt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending items: %w", err)
	}
	return items, nil
}

func (r *SQLitePendingRepo) Update(ctx context.Context, p *domain.PendingItem) error {
	query := `UPDATE pending_items SET task_date = ?, source_type = ?, contact_info = ?, description = ?,
		expected_completion_date = ?, is_replied = ?, actual_completion_date = ?, handling_notes = ?,
		related_wbs = ?, status = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(p.TaskDate, dateLayout),
		p.SourceType,
		p.ContactInfo,
		p.Description,
		nullableTimeToString(p.ExpectedCompletion, dateLayout),
		boolToInt(p.IsReplied),
		nullableTimeToString(p.ActualCompletion, dateLayout),
		p.HandlingNotes,
		p.RelatedWBS,
		p.Status,
		p.Priority,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pending item: %w", err)
	}
	return nil
}

func (r *SQLitePendingRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM pending_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting pending item: %w", err)
	}
	return nil
}

func (r *SQLitePendingRepo) populatePending(p *domain.PendingItem,
	taskDate, expected, actual sql.NullString, repliedInt int,
	createdAtStr, updatedAtStr string) error {
	p.TaskDate = parseNullableTime(taskDate, dateLayout)
	p.ExpectedCompletion = parseNullableTime(expected, dateLayout)
	p.ActualCompletion = parseNullableTime(actual, dateLayout)
	p.IsReplied = intToBool(repliedInt)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}

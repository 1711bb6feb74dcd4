package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// issueNumberPrefix is the display prefix for generated issue numbers.
const issueNumberPrefix = "ISS-"

// issueColumns is the canonical SELECT column list for issue_tracking.
const issueColumns = `id, project_id, issue_number, issue_title, issue_description,
		issue_type, issue_category, severity, priority,
		reported_by, reported_date, assigned_to, status, resolution,
		target_resolution_date, actual_resolution_date, is_escalated, created_at, updated_at`

// SQLiteIssueRepo implements IssueRepo using a SQLite database.
type SQLiteIssueRepo struct {
	db *sql.DB
}

// NewSQLiteIssueRepo creates a new SQLiteIssueRepo.
func NewSQLiteIssueRepo(db *sql.DB) *SQLiteIssueRepo {
	return &SQLiteIssueRepo{db: db}
}

func (r *SQLiteIssueRepo) Create(ctx context.Context, i *domain.Issue) error {
	query := `INSERT INTO issue_tracking (id, project_id, issue_number, issue_title, issue_description,
		issue_type, issue_category, severity, priority,
		reported_by, reported_date, assigned_to, status, resolution,
		target_resolution_date, actual_resolution_date, is_escalated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.ProjectID,
		i.Number,
		i.Title,
		i.Description,
		i.Type,
		i.Category,
		i.Severity,
		i.Priority,
		i.ReportedBy,
		nullableTimeToString(i.ReportedDate, dateLayout),
		i.AssignedTo,
		i.Status,
		i.Resolution,
		nullableTimeToString(i.TargetResolution, dateLayout),
		nullableTimeToString(i.ActualResolution, dateLayout),
		boolToInt(i.IsEscalated),
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issue_tracking WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanIssue(row)
}

func (r *SQLiteIssueRepo) GetByNumber(ctx context.Context, projectID, number string) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issue_tracking WHERE project_id = ? AND issue_number = ?`
	row := r.db.QueryRowContext(ctx, query, projectID, number)
	return r.scanIssue(row)
}

func (r *SQLiteIssueRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issue_tracking WHERE project_id = ? ORDER BY issue_number`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		issue, err := r.scanIssueRow(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}

// NextNumber returns the next free issue number for a project, in the form
// ISS-001. Numbers never shrink after deletions; the highest existing suffix
// plus one wins.
func (r *SQLiteIssueRepo) NextNumber(ctx context.Context, projectID string) (string, error) {
	query := `SELECT issue_number FROM issue_tracking WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return "", fmt.Errorf("listing issue numbers: %w", err)
	}
	defer rows.Close()

	max := 0
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return "", fmt.Errorf("scanning issue number: %w", err)
		}
		suffix := strings.TrimPrefix(number, issueNumberPrefix)
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating issue numbers: %w", err)
	}
	return fmt.Sprintf("%s%03d", issueNumberPrefix, max+1), nil
}

func (r *SQLiteIssueRepo) Update(ctx context.Context, i *domain.Issue) error {
	query := `UPDATE issue_tracking SET issue_title = ?, issue_description = ?,
		issue_type = ?, issue_category = ?, severity = ?, priority = ?,
		reported_by = ?, reported_date = ?, assigned_to = ?, status = ?, resolution = ?,
		target_resolution_date = ?, actual_resolution_date = ?, is_escalated = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.Title,
		i.Description,
		i.Type,
		i.Category,
		i.Severity,
		i.Priority,
		i.ReportedBy,
		nullableTimeToString(i.ReportedDate, dateLayout),
		i.AssignedTo,
		i.Status,
		i.Resolution,
		nullableTimeToString(i.TargetResolution, dateLayout),
		nullableTimeToString(i.ActualResolution, dateLayout),
		boolToInt(i.IsEscalated),
		i.UpdatedAt.Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM issue_tracking WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) scanIssue(row *sql.Row) (*domain.Issue, error) {
	var i domain.Issue
	var reported, target, actual sql.NullString
	var escalatedInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&i.ID, &i.ProjectID, &i.Number, &i.Title, &i.Description,
		&i.Type, &i.Category, &i.Severity, &i.Priority,
		&i.ReportedBy, &reported, &i.AssignedTo, &i.Status, &i.Resolution,
		&target, &actual, &escalatedInt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("issue: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning issue: %w", err)
	}
	if err := r.populateIssue(&i, reported, target, actual, escalatedInt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *SQLiteIssueRepo) scanIssueRow(rows *sql.Rows) (*domain.Issue, error) {
	var i domain.Issue
	var reported, target, actual sql.NullString
	var escalatedInt int
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&i.ID, &i.ProjectID, &i.Number, &i.Title, &i.Description,
		&i.Type, &i.Category, &i.Severity, &i.Priority,
		&i.ReportedBy, &reported, &i.AssignedTo, &i.Status, &i.Resolution,
		&target, &actual, &escalatedInt, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning issue row: %w", err)
	}
	if err := r.populateIssue(&i, reported, target, actual, escalatedInt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *SQLiteIssueRepo) populateIssue(i *domain.Issue,
	reported, target, actual sql.NullString, escalatedInt int,
	createdAtStr, updatedAtStr string) error {
	i.ReportedDate = parseNullableTime(reported, dateLayout)
	i.TargetResolution = parseNullableTime(target, dateLayout)
	i.ActualResolution = parseNullableTime(actual, dateLayout)
	i.IsEscalated = intToBool(escalatedInt)

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// trackingItemColumns is the canonical SELECT column list for tracking_items.
const trackingItemColumns = `item_id, project_id, wbs_id, parent_id, task_name, item_type, category,
		owner_unit, owner_kind, primary_owner, secondary_owner,
		original_planned_start, original_planned_end, revised_planned_start, revised_planned_end,
		actual_start_date, actual_end_date,
		work_days, actual_progress, status, notes, alert_flag, is_internal,
		source, source_date, created_at, updated_at`

// SQLiteTrackingItemRepo implements TrackingItemRepo using a SQLite database.
type SQLiteTrackingItemRepo struct {
	db *sql.DB
}

// NewSQLiteTrackingItemRepo creates a new SQLiteTrackingItemRepo.
func NewSQLiteTrackingItemRepo(db *sql.DB) *SQLiteTrackingItemRepo {
	return &SQLiteTrackingItemRepo{db: db}
}

func (r *SQLiteTrackingItemRepo) Create(ctx context.Context, item *domain.TrackingItem) error {
	query := `INSERT INTO tracking_items (item_id, project_id, wbs_id, parent_id, task_name, item_type, category,
		owner_unit, owner_kind, primary_owner, secondary_owner,
		original_planned_start, original_planned_end, revised_planned_start, revised_planned_end,
		actual_start_date, actual_end_date,
		work_days, actual_progress, status, notes, alert_flag, is_internal,
		source, source_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ItemID,
		item.ProjectID,
		item.WBSID,
		nullableStringToValue(item.ParentID),
		item.TaskName,
		string(item.ItemType),
		item.Category,
		item.OwnerUnit,
		string(item.OwnerKind),
		item.PrimaryOwner,
		item.SecondaryOwner,
		nullableTimeToString(item.OriginalPlannedStart, dateLayout),
		nullableTimeToString(item.OriginalPlannedEnd, dateLayout),
		nullableTimeToString(item.RevisedPlannedStart, dateLayout),
		nullableTimeToString(item.RevisedPlannedEnd, dateLayout),
		nullableTimeToString(item.ActualStart, dateLayout),
		nullableTimeToString(item.ActualEnd, dateLayout),
		nullableIntToValue(item.WorkDays),
		item.ActualProgress,
		string(item.Status),
		item.Notes,
		boolToInt(item.AlertFlag),
		boolToInt(item.IsInternal),
		string(item.Source),
		nullableTimeToString(item.SourceDate, dateLayout),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracking item: %w", err)
	}
	return nil
}

func (r *SQLiteTrackingItemRepo) GetByID(ctx context.Context, itemID string) (*domain.TrackingItem, error) {
	query := `SELECT ` + trackingItemColumns + ` FROM tracking_items WHERE item_id = ?`
	row := r.db.QueryRowContext(ctx, query, itemID)
	return r.scanTrackingItem(row)
}

func (r *SQLiteTrackingItemRepo) List(ctx context.Context, filter ItemFilter) ([]*domain.TrackingItem, error) {
	query := `SELECT ` + trackingItemColumns + ` FROM tracking_items` + filterClause(filter) + ` ORDER BY item_id`
	rows, err := r.db.QueryContext(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("listing tracking items: %w", err)
	}
	defer rows.Close()
	return r.scanTrackingItems(rows)
}

func (r *SQLiteTrackingItemRepo) Count(ctx context.Context, filter ItemFilter) (int, error) {
	query := `SELECT COUNT(*) FROM tracking_items` + filterClause(filter)
	var n int
	if err := r.db.QueryRowContext(ctx, query, filterArgs(filter)...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tracking items: %w", err)
	}
	return n, nil
}

func (r *SQLiteTrackingItemRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.TrackingItem, error) {
	query := `SELECT ` + trackingItemColumns + ` FROM tracking_items WHERE parent_id = ? ORDER BY item_id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child items: %w", err)
	}
	defer rows.Close()
	return r.scanTrackingItems(rows)
}

func (r *SQLiteTrackingItemRepo) Update(ctx context.Context, item *domain.TrackingItem) error {
	query := `UPDATE tracking_items SET wbs_id = ?, parent_id = ?, task_name = ?, item_type = ?, category = ?,
		owner_unit = ?, owner_kind = ?, primary_owner = ?, secondary_owner = ?,
		original_planned_start = ?, original_planned_end = ?, revised_planned_start = ?, revised_planned_end = ?,
		actual_start_date = ?, actual_end_date = ?,
		work_days = ?, actual_progress = ?, status = ?, notes = ?, alert_flag = ?, is_internal = ?,
		source = ?, source_date = ?, updated_at = ?
		WHERE item_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		item.WBSID,
		nullableStringToValue(item.ParentID),
		item.TaskName,
		string(item.ItemType),
		item.Category,
		item.OwnerUnit,
		string(item.OwnerKind),
		item.PrimaryOwner,
		item.SecondaryOwner,
		nullableTimeToString(item.OriginalPlannedStart, dateLayout),
		nullableTimeToString(item.OriginalPlannedEnd, dateLayout),
		nullableTimeToString(item.RevisedPlannedStart, dateLayout),
		nullableTimeToString(item.RevisedPlannedEnd, dateLayout),
		nullableTimeToString(item.ActualStart, dateLayout),
		nullableTimeToString(item.ActualEnd, dateLayout),
		nullableIntToValue(item.WorkDays),
		item.ActualProgress,
		string(item.Status),
		item.Notes,
		boolToInt(item.AlertFlag),
		boolToInt(item.IsInternal),
		string(item.Source),
		nullableTimeToString(item.SourceDate, dateLayout),
		item.UpdatedAt.Format(time.RFC3339),
		item.ItemID,
	)
	if err != nil {
		return fmt.Errorf("updating tracking item: %w", err)
	}
	return nil
}

func (r *SQLiteTrackingItemRepo) Delete(ctx context.Context, itemID string) error {
	query := `DELETE FROM tracking_items WHERE item_id = ?`
	_, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("deleting tracking item: %w", err)
	}
	return nil
}

// filterClause builds the WHERE clause for an ItemFilter. Internal items are
// excluded unless the filter opts in.
func filterClause(f ItemFilter) string {
	clause := ` WHERE 1=1`
	if f.ProjectID != "" {
		clause += ` AND project_id = ?`
	}
	if f.Status != "" {
		clause += ` AND status = ?`
	}
	if !f.IncludeInternal {
		clause += ` AND is_internal = 0`
	}
	if f.ExcludeCompleted {
		clause += ` AND status NOT IN ('` + string(domain.StatusCompleted) + `', '` + string(domain.StatusCancelled) + `')`
	}
	return clause
}

func filterArgs(f ItemFilter) []interface{} {
	var args []interface{}
	if f.ProjectID != "" {
		args = append(args, f.ProjectID)
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
	}
	return args
}

// nullableStringToValue converts a *string to a value suitable for SQLite storage.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// scanTrackingItem scans a single tracking item from a *sql.Row.
func (r *SQLiteTrackingItemRepo) scanTrackingItem(row *sql.Row) (*domain.TrackingItem, error) {
	var item domain.TrackingItem
	var parentID sql.NullString
	var itemTypeStr, ownerKindStr, statusStr, sourceStr string
	var origStart, origEnd, revStart, revEnd, actStart, actEnd, sourceDate sql.NullString
	var workDays sql.NullInt64
	var alertInt, internalInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&item.ItemID, &item.ProjectID, &item.WBSID, &parentID, &item.TaskName, &itemTypeStr, &item.Category,
		&item.OwnerUnit, &ownerKindStr, &item.PrimaryOwner, &item.SecondaryOwner,
		&origStart, &origEnd, &revStart, &revEnd,
		&actStart, &actEnd,
		&workDays, &item.ActualProgress, &statusStr, &item.Notes, &alertInt, &internalInt,
		&sourceStr, &sourceDate, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tracking item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tracking item: %w", err)
	}

	return r.populateTrackingItem(&item, parentID, itemTypeStr, ownerKindStr, statusStr, sourceStr,
		origStart, origEnd, revStart, revEnd, actStart, actEnd, sourceDate,
		workDays, alertInt, internalInt, createdAtStr, updatedAtStr)
}

// scanTrackingItems scans multiple tracking items from *sql.Rows.
func (r *SQLiteTrackingItemRepo) scanTrackingItems(rows *sql.Rows) ([]*domain.TrackingItem, error) {
	var items []*domain.TrackingItem
	for rows.Next() {
		var item domain.TrackingItem
		var parentID sql.NullString
		var itemTypeStr, ownerKindStr, statusStr, sourceStr string
		var origStart, origEnd, revStart, revEnd, actStart, actEnd, sourceDate sql.NullString
		var workDays sql.NullInt64
		var alertInt, internalInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&item.ItemID, &item.ProjectID, &item.WBSID, &parentID, &item.TaskName, &itemTypeStr, &item.Category,
			&item.OwnerUnit, &ownerKindStr, &item.PrimaryOwner, &item.SecondaryOwner,
			&origStart, &origEnd, &revStart, &revEnd,
			&actStart, &actEnd,
			&workDays, &item.ActualProgress, &statusStr, &item.Notes, &alertInt, &internalInt,
			&sourceStr, &sourceDate, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning tracking item row: %w", err)
		}

		populated, err := r.populateTrackingItem(&item, parentID, itemTypeStr, ownerKindStr, statusStr, sourceStr,
			origStart, origEnd, revStart, revEnd, actStart, actEnd, sourceDate,
			workDays, alertInt, internalInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracking items: %w", err)
	}
	return items, nil
}

// populateTrackingItem fills in parsed fields on a TrackingItem after scanning raw values.
// Malformed date strings degrade to nil rather than failing the read.
func (r *SQLiteTrackingItemRepo) populateTrackingItem(
	item *domain.TrackingItem,
	parentID sql.NullString,
	itemTypeStr, ownerKindStr, statusStr, sourceStr string,
	origStart, origEnd, revStart, revEnd, actStart, actEnd, sourceDate sql.NullString,
	workDays sql.NullInt64,
	alertInt, internalInt int,
	createdAtStr, updatedAtStr string,
) (*domain.TrackingItem, error) {
	if parentID.Valid && parentID.String != "" {
		p := parentID.String
		item.ParentID = &p
	}
	item.ItemType = domain.ItemType(itemTypeStr)
	item.OwnerKind = domain.OwnerKind(ownerKindStr)
	item.Status = domain.TrackingStatus(statusStr)
	item.Source = domain.ItemSource(sourceStr)
	item.AlertFlag = intToBool(alertInt)
	item.IsInternal = intToBool(internalInt)

	item.OriginalPlannedStart = parseNullableTime(origStart, dateLayout)
	item.OriginalPlannedEnd = parseNullableTime(origEnd, dateLayout)
	item.RevisedPlannedStart = parseNullableTime(revStart, dateLayout)
	item.RevisedPlannedEnd = parseNullableTime(revEnd, dateLayout)
	item.ActualStart = parseNullableTime(actStart, dateLayout)
	item.ActualEnd = parseNullableTime(actEnd, dateLayout)
	item.SourceDate = parseNullableTime(sourceDate, dateLayout)

	if workDays.Valid {
		wd := int(workDays.Int64)
		item.WorkDays = &wd
	}

	var parseErr error
	item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return item, nil
}

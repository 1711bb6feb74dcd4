package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db *sql.DB
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(db *sql.DB) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: db}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.ItemDependency) error {
	query := `INSERT INTO item_dependencies (predecessor_id, successor_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.PredecessorItemID, d.SuccessorItemID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	query := `DELETE FROM item_dependencies WHERE predecessor_id = ? AND successor_id = ?`
	result, err := r.db.ExecContext(ctx, query, predecessorID, successorID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted dependency: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("dependency: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListPredecessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error) {
	query := `SELECT predecessor_id, successor_id FROM item_dependencies WHERE successor_id = ? ORDER BY predecessor_id`
	return r.list(ctx, query, itemID)
}

func (r *SQLiteDependencyRepo) ListSuccessors(ctx context.Context, itemID string) ([]domain.ItemDependency, error) {
	query := `SELECT predecessor_id, successor_id FROM item_dependencies WHERE predecessor_id = ? ORDER BY successor_id`
	return r.list(ctx, query, itemID)
}

func (r *SQLiteDependencyRepo) list(ctx context.Context, query, arg string) ([]domain.ItemDependency, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.ItemDependency
	for rows.Next() {
		var d domain.ItemDependency
		if err := rows.Scan(&d.PredecessorItemID, &d.SuccessorItemID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// InsertSchedulingResult replaces any prior result for the plan, matching
// the teacher's delete-then-insert regenerate pattern: a plan only ever
// has one current solve, and SolveVariants is cheap enough to rerun rather
// than version its outputs.
func (r *Repository) InsertSchedulingResult(schedulePlanID string, result *domain.VariantsResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery := `DELETE FROM scheduling_results WHERE schedule_plan_id = $1`
	if _, err := tx.ExecContext(ctx, deleteQuery, schedulePlanID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO scheduling_results (schedule_plan_id, variants, best_index)
		VALUES ($1, $2, $3)
	`

	params := []any{
		schedulePlanID,
		jsonColumn[[]domain.ScheduleResult]{Data: result.Variants},
		result.BestIndex,
	}

	if _, err := tx.ExecContext(ctx, insertQuery, params...); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetSchedulingResultBySchedulePlanID(schedulePlanID string) (*domain.VariantsResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT variants, best_index
		FROM scheduling_results
		WHERE schedule_plan_id = $1
	`

	variants := jsonColumn[[]domain.ScheduleResult]{}
	var bestIndex int

	if err := r.dbpool.QueryRowContext(ctx, query, schedulePlanID).Scan(&variants, &bestIndex); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}

	return &domain.VariantsResult{Variants: variants.Data, BestIndex: bestIndex}, nil
}

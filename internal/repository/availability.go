package repository

import (
	"context"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

// InsertAvailabilitySubmission replaces any prior submission from the same
// staff member for the same plan, matching the teacher's
// delete-then-insert resubmission pattern.
func (r *Repository) InsertAvailabilitySubmission(submission *domain.AvailabilitySubmission) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery := `DELETE FROM availability_submissions WHERE staff_id = $1 AND schedule_plan_id = $2`
	if _, err := tx.ExecContext(ctx, deleteQuery, submission.StaffID, submission.SchedulePlanID); err != nil {
		return err
	}

	submission.ID = uuid.NewString()
	for i := range submission.Windows {
		if submission.Windows[i].ID == "" {
			submission.Windows[i].ID = uuid.NewString()
		}
		submission.Windows[i].StaffID = submission.StaffID
	}

	insertQuery := `
		INSERT INTO availability_submissions (id, schedule_plan_id, staff_id, windows)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	params := []any{
		submission.ID,
		submission.SchedulePlanID,
		submission.StaffID,
		jsonColumn[[]domain.AvailabilityWindow]{Data: submission.Windows},
	}

	if err := tx.QueryRowContext(ctx, insertQuery, params...).Scan(&submission.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetAvailabilitySubmission(staffID, schedulePlanID string) (*domain.AvailabilitySubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, schedule_plan_id, staff_id, windows, created_at
		FROM availability_submissions
		WHERE staff_id = $1 AND schedule_plan_id = $2
	`

	submission := &domain.AvailabilitySubmission{}
	windows := jsonColumn[[]domain.AvailabilityWindow]{}
	dst := []any{&submission.ID, &submission.SchedulePlanID, &submission.StaffID, &windows, &submission.CreatedAt}

	if err := r.dbpool.QueryRowContext(ctx, query, staffID, schedulePlanID).Scan(dst...); err != nil {
		return nil, err
	}
	submission.Windows = windows.Data

	return submission, nil
}

func (r *Repository) GetAllSubmissionsBySchedulePlanID(schedulePlanID string) ([]*domain.AvailabilitySubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, schedule_plan_id, staff_id, windows, created_at
		FROM availability_submissions
		WHERE schedule_plan_id = $1
	`

	rows, err := r.dbpool.QueryContext(ctx, query, schedulePlanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []*domain.AvailabilitySubmission{}
	for rows.Next() {
		var submission domain.AvailabilitySubmission
		windows := jsonColumn[[]domain.AvailabilityWindow]{}
		dst := []any{&submission.ID, &submission.SchedulePlanID, &submission.StaffID, &windows, &submission.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		submission.Windows = windows.Data
		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

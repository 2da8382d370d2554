package repository

import (
	"context"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetAllSchedulePlans() ([]*domain.SchedulePlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			id, name, description, week_start_date,
			submission_start_time, submission_end_time,
			active_start_time, active_end_time,
			requirement_template_id, constraints, created_at, version
		FROM schedule_plans
		ORDER BY week_start_date DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []*domain.SchedulePlan{}
	for rows.Next() {
		var plan domain.SchedulePlan
		constraints := jsonColumn[domain.Constraints]{}
		dst := []any{
			&plan.ID,
			&plan.Name,
			&plan.Description,
			&plan.WeekStartDate,
			&plan.SubmissionStartTime,
			&plan.SubmissionEndTime,
			&plan.ActiveStartTime,
			&plan.ActiveEndTime,
			&plan.RequirementTemplateID,
			&constraints,
			&plan.CreatedAt,
			&plan.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		plan.Constraints = constraints.Data
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *Repository) GetSchedulePlanByID(id string) (*domain.SchedulePlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			id, name, description, week_start_date,
			submission_start_time, submission_end_time,
			active_start_time, active_end_time,
			requirement_template_id, constraints, created_at, version
		FROM schedule_plans
		WHERE id = $1
	`

	plan := &domain.SchedulePlan{}
	constraints := jsonColumn[domain.Constraints]{}
	dst := []any{
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.WeekStartDate,
		&plan.SubmissionStartTime,
		&plan.SubmissionEndTime,
		&plan.ActiveStartTime,
		&plan.ActiveEndTime,
		&plan.RequirementTemplateID,
		&constraints,
		&plan.CreatedAt,
		&plan.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	plan.Constraints = constraints.Data

	return plan, nil
}

func (r *Repository) CreateSchedulePlan(plan *domain.SchedulePlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	plan.ID = uuid.NewString()

	query := `
		INSERT INTO schedule_plans (
			id, name, description, week_start_date,
			submission_start_time, submission_end_time,
			active_start_time, active_end_time,
			requirement_template_id, constraints
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, version
	`

	params := []any{
		plan.ID,
		plan.Name,
		plan.Description,
		plan.WeekStartDate,
		plan.SubmissionStartTime,
		plan.SubmissionEndTime,
		plan.ActiveStartTime,
		plan.ActiveEndTime,
		plan.RequirementTemplateID,
		jsonColumn[domain.Constraints]{Data: plan.Constraints},
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&plan.CreatedAt, &plan.Version); err != nil {
		return err
	}

	return nil
}

// UpdateSchedulePlan deliberately excludes requirement_template_id: letting
// a scheduler swap the template out from under an in-flight plan would
// invalidate any availability already submitted against it.
func (r *Repository) UpdateSchedulePlan(plan *domain.SchedulePlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE schedule_plans
		SET
			name = $1,
			description = $2,
			week_start_date = $3,
			submission_start_time = $4,
			submission_end_time = $5,
			active_start_time = $6,
			active_end_time = $7,
			constraints = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	params := []any{
		plan.Name,
		plan.Description,
		plan.WeekStartDate,
		plan.SubmissionStartTime,
		plan.SubmissionEndTime,
		plan.ActiveStartTime,
		plan.ActiveEndTime,
		jsonColumn[domain.Constraints]{Data: plan.Constraints},
		plan.ID,
		plan.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&plan.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSchedulePlan(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM schedule_plans WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

// GetLatestOpenSchedulePlanID mirrors the teacher's "latest available plan"
// special option, used by the middleware that resolves the
// /schedule-plans/open-for-submission path segment.
func (r *Repository) GetLatestOpenSchedulePlanID() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id FROM schedule_plans
		WHERE submission_start_time <= NOW() AND submission_end_time > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var id string
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

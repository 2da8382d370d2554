package repository

import (
	"context"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

// RequirementTemplate shifts are stored as a single jsonb column rather
// than the teacher's normalized schedule_template_shifts table: a
// template's shifts are always read and replaced as one unit (never
// queried or updated per-shift), so the join the teacher's layout buys
// has no caller here.

func (r *Repository) GetRequirementTemplateByID(id string) (*domain.RequirementTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, description, shifts, created_at, version
		FROM requirement_templates
		WHERE id = $1
	`

	tmpl := &domain.RequirementTemplate{}
	shifts := jsonColumn[[]domain.RequirementTemplateShift]{}
	dst := []any{&tmpl.ID, &tmpl.Name, &tmpl.Description, &shifts, &tmpl.CreatedAt, &tmpl.Version}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	tmpl.Shifts = shifts.Data

	return tmpl, nil
}

func (r *Repository) GetAllRequirementTemplates() ([]*domain.RequirementTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, description, shifts, created_at, version
		FROM requirement_templates
		ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []*domain.RequirementTemplate{}
	for rows.Next() {
		var tmpl domain.RequirementTemplate
		shifts := jsonColumn[[]domain.RequirementTemplateShift]{}
		dst := []any{&tmpl.ID, &tmpl.Name, &tmpl.Description, &shifts, &tmpl.CreatedAt, &tmpl.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tmpl.Shifts = shifts.Data
		templates = append(templates, &tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) CreateRequirementTemplate(tmpl *domain.RequirementTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tmpl.ID = uuid.NewString()
	for i := range tmpl.Shifts {
		if tmpl.Shifts[i].ID == "" {
			tmpl.Shifts[i].ID = uuid.NewString()
		}
	}

	query := `
		INSERT INTO requirement_templates (id, name, description, shifts)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, version
	`

	params := []any{tmpl.ID, tmpl.Name, tmpl.Description, jsonColumn[[]domain.RequirementTemplateShift]{Data: tmpl.Shifts}}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&tmpl.CreatedAt, &tmpl.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateRequirementTemplate(tmpl *domain.RequirementTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	for i := range tmpl.Shifts {
		if tmpl.Shifts[i].ID == "" {
			tmpl.Shifts[i].ID = uuid.NewString()
		}
	}

	query := `
		UPDATE requirement_templates
		SET name = $1, description = $2, shifts = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{
		tmpl.Name,
		tmpl.Description,
		jsonColumn[[]domain.RequirementTemplateShift]{Data: tmpl.Shifts},
		tmpl.ID,
		tmpl.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&tmpl.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteRequirementTemplate(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM requirement_templates WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetStaffByID(id string) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, color, qualifications, max_hours_per_week, min_hours_per_week,
			employment_type, email, phone, created_at, version
		FROM staff
		WHERE id = $1
	`

	staff := &domain.Staff{}
	qualifications := jsonColumn[[]string]{}
	dst := []any{
		&staff.ID,
		&staff.Name,
		&staff.Color,
		&qualifications,
		&staff.MaxHoursPerWeek,
		&staff.MinHoursPerWeek,
		&staff.EmploymentType,
		&staff.Email,
		&staff.Phone,
		&staff.CreatedAt,
		&staff.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	staff.Qualifications = qualifications.Data

	return staff, nil
}

func (r *Repository) GetAllStaff() ([]*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, color, qualifications, max_hours_per_week, min_hours_per_week,
			employment_type, email, phone, created_at, version
		FROM staff
		ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []*domain.Staff{}
	for rows.Next() {
		var staff domain.Staff
		qualifications := jsonColumn[[]string]{}
		dst := []any{
			&staff.ID,
			&staff.Name,
			&staff.Color,
			&qualifications,
			&staff.MaxHoursPerWeek,
			&staff.MinHoursPerWeek,
			&staff.EmploymentType,
			&staff.Email,
			&staff.Phone,
			&staff.CreatedAt,
			&staff.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		staff.Qualifications = qualifications.Data
		roster = append(roster, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}

func (r *Repository) CreateStaff(staff *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff.ID = uuid.NewString()

	query := `
		INSERT INTO staff (id, name, color, qualifications, max_hours_per_week, min_hours_per_week,
			employment_type, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, version
	`

	params := []any{
		staff.ID,
		staff.Name,
		staff.Color,
		jsonColumn[[]string]{Data: staff.Qualifications},
		staff.MaxHoursPerWeek,
		staff.MinHoursPerWeek,
		staff.EmploymentType,
		staff.Email,
		staff.Phone,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaff(staff *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE staff
		SET name = $1, color = $2, qualifications = $3, max_hours_per_week = $4,
			min_hours_per_week = $5, employment_type = $6, email = $7, phone = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	params := []any{
		staff.Name,
		staff.Color,
		jsonColumn[[]string]{Data: staff.Qualifications},
		staff.MaxHoursPerWeek,
		staff.MinHoursPerWeek,
		staff.EmploymentType,
		staff.Email,
		staff.Phone,
		staff.ID,
		staff.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM staff WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetStaffAccountByID(id string) (*domain.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, staff_id, username, password_hash, email, role, is_active, created_at, version
		FROM staff_accounts
		WHERE id = $1
	`

	account := &domain.StaffAccount{}
	dst := []any{
		&account.ID,
		&account.StaffID,
		&account.Username,
		&account.PasswordHash,
		&account.Email,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetStaffAccountByUsername(username string) (*domain.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, staff_id, username, password_hash, email, role, is_active, created_at, version
		FROM staff_accounts
		WHERE username = $1
	`

	account := &domain.StaffAccount{}
	dst := []any{
		&account.ID,
		&account.StaffID,
		&account.Username,
		&account.PasswordHash,
		&account.Email,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetAllStaffAccounts() ([]*domain.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, staff_id, username, password_hash, email, role, is_active, created_at, version
		FROM staff_accounts
		ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*domain.StaffAccount{}
	for rows.Next() {
		var account domain.StaffAccount
		dst := []any{
			&account.ID,
			&account.StaffID,
			&account.Username,
			&account.PasswordHash,
			&account.Email,
			&account.Role,
			&account.IsActive,
			&account.CreatedAt,
			&account.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *Repository) CreateStaffAccount(account *domain.StaffAccount) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	account.ID = uuid.NewString()

	query := `
		INSERT INTO staff_accounts (id, staff_id, username, password_hash, email, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, version
	`

	params := []any{
		account.ID,
		account.StaffID,
		account.Username,
		account.PasswordHash,
		account.Email,
		account.Role,
		account.IsActive,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&account.CreatedAt, &account.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaffAccount(account *domain.StaffAccount) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE staff_accounts
		SET username = $1, password_hash = $2, email = $3, role = $4, is_active = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	params := []any{
		account.Username,
		account.PasswordHash,
		account.Email,
		account.Role,
		account.IsActive,
		account.ID,
		account.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&account.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaffAccount(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM staff_accounts WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM staff_accounts WHERE email = $1)`

	var exists bool
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

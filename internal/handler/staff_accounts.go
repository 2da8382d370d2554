package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllStaffAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repository.GetAllStaffAccounts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched staff accounts", accounts)
}

func (h *Handler) CreateStaffAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID  string `json:"staffId" validate:"required"`
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=staff scheduler admin"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewUser.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	account := &domain.StaffAccount{
		StaffID:      req.StaffID,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Email:        req.Email,
		Role:         domain.Role(req.Role),
		IsActive:     true,
	}

	if err := h.repository.CreateStaffAccount(account); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "staff_accounts_username_key":
				h.badRequest(w, r, errors.New("that username is already taken"))
			case "staff_accounts_email_key":
				h.badRequest(w, r, errors.New("that email is already in use"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "create_user",
		To:   account.Email,
		Data: domain.CreateUserMailData{
			FullName: req.Username,
			Username: req.Username,
			Password: password,
		},
	}

	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff account created", account)
}

func (h *Handler) GetStaffAccount(w http.ResponseWriter, r *http.Request) {
	account := r.Context().Value(StaffAccountCtx).(*domain.StaffAccount)
	h.successResponse(w, r, "fetched staff account", account)
}

func (h *Handler) UpdateStaffAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=staff scheduler admin"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	account := r.Context().Value(StaffAccountCtx).(*domain.StaffAccount)

	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.Role != nil {
		account.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateStaffAccount(account); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "staff_accounts_email_key":
				h.badRequest(w, r, errors.New("that email is already in use"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update the account, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff account updated", account)
}

func (h *Handler) DeleteStaffAccount(w http.ResponseWriter, r *http.Request) {
	account := r.Context().Value(StaffAccountCtx).(*domain.StaffAccount)

	if err := h.repository.DeleteStaffAccount(account.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff account deleted", nil)
}

package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	roster, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched staff roster", roster)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string   `json:"name" validate:"required"`
		Color           string   `json:"color" validate:"required"`
		Qualifications  []string `json:"qualifications"`
		MaxHoursPerWeek int      `json:"maxHoursPerWeek" validate:"gte=0"`
		MinHoursPerWeek int      `json:"minHoursPerWeek" validate:"gte=0,ltefield=MaxHoursPerWeek"`
		EmploymentType  string   `json:"employmentType" validate:"required,oneof=full-time part-time"`
		Email           string   `json:"email" validate:"omitempty,email"`
		Phone           string   `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.Staff{
		Name:            req.Name,
		Color:           req.Color,
		Qualifications:  req.Qualifications,
		MaxHoursPerWeek: req.MaxHoursPerWeek,
		MinHoursPerWeek: req.MinHoursPerWeek,
		EmploymentType:  domain.EmploymentType(req.EmploymentType),
		Email:           req.Email,
		Phone:           req.Phone,
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff member created", staff)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	staff, err := h.repository.GetStaffByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff member not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "fetched staff member", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	staff, err := h.repository.GetStaffByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff member not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Color           *string  `json:"color"`
		Qualifications  []string `json:"qualifications"`
		MaxHoursPerWeek *int     `json:"maxHoursPerWeek" validate:"omitempty,gte=0"`
		MinHoursPerWeek *int     `json:"minHoursPerWeek" validate:"omitempty,gte=0"`
		EmploymentType  *string  `json:"employmentType" validate:"omitempty,oneof=full-time part-time"`
		Email           *string  `json:"email" validate:"omitempty,email"`
		Phone           *string  `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Color != nil {
		staff.Color = *req.Color
	}
	if req.Qualifications != nil {
		staff.Qualifications = req.Qualifications
	}
	if req.MaxHoursPerWeek != nil {
		staff.MaxHoursPerWeek = *req.MaxHoursPerWeek
	}
	if req.MinHoursPerWeek != nil {
		staff.MinHoursPerWeek = *req.MinHoursPerWeek
	}
	if req.EmploymentType != nil {
		staff.EmploymentType = domain.EmploymentType(*req.EmploymentType)
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}

	if staff.MinHoursPerWeek > staff.MaxHoursPerWeek {
		h.badRequest(w, r, errors.New("minHoursPerWeek cannot exceed maxHoursPerWeek"))
		return
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff member updated", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repository.DeleteStaff(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff member deleted", nil)
}

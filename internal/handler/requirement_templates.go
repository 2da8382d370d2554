package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) GetAllRequirementTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllRequirementTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched requirement templates", templates)
}

func (h *Handler) CreateRequirementTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Shifts      []struct {
			LocationID             string   `json:"locationId" validate:"required"`
			StartHour              int      `json:"startHour" validate:"gte=0,lte=23"`
			EndHour                int      `json:"endHour" validate:"gte=1,lte=24,gtfield=StartHour"`
			RequiredQualifications []string `json:"requiredQualifications"`
			MinStaff                int      `json:"minStaff" validate:"gte=1"`
			MaxStaff                int      `json:"maxStaff" validate:"gtefield=MinStaff"`
			ApplicableDays          []int    `json:"applicableDays" validate:"required,dive,gte=0,lte=6"`
		} `json:"shifts" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tmpl := &domain.RequirementTemplate{
		Name:        req.Name,
		Description: req.Description,
		Shifts:      make([]domain.RequirementTemplateShift, 0, len(req.Shifts)),
	}

	for _, shift := range req.Shifts {
		tmpl.Shifts = append(tmpl.Shifts, domain.RequirementTemplateShift{
			LocationID:             shift.LocationID,
			StartHour:              shift.StartHour,
			EndHour:                shift.EndHour,
			RequiredQualifications: shift.RequiredQualifications,
			MinStaff:               shift.MinStaff,
			MaxStaff:               shift.MaxStaff,
			ApplicableDays:         shift.ApplicableDays,
		})
	}

	if err := utils.ValidateRequirementTemplateShifts(tmpl.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateRequirementTemplate(tmpl); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "requirement_templates_name_key":
				h.errorResponse(w, r, "that template name is already taken")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "requirement template created", tmpl)
}

func (h *Handler) GetRequirementTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(RequirementTemplateCtx).(*domain.RequirementTemplate)
	h.successResponse(w, r, "fetched requirement template", tmpl)
}

func (h *Handler) UpdateRequirementTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(RequirementTemplateCtx).(*domain.RequirementTemplate)

	var req struct {
		Name        *string                           `json:"name"`
		Description *string                           `json:"description"`
		Shifts      []domain.RequirementTemplateShift `json:"shifts"`
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
		tmpl.Name = *req.Name
	}
	if req.Description != nil {
		tmpl.Description = *req.Description
	}
	if req.Shifts != nil {
		tmpl.Shifts = req.Shifts
	}

	if err := utils.ValidateRequirementTemplateShifts(tmpl.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateRequirementTemplate(tmpl); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "requirement_templates_name_key":
				h.errorResponse(w, r, "that template name is already taken")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "requirement template updated", tmpl)
}

func (h *Handler) DeleteRequirementTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(RequirementTemplateCtx).(*domain.RequirementTemplate)

	if err := h.repository.DeleteRequirementTemplate(tmpl.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_plans_requirement_template_id_fkey":
				h.errorResponse(w, r, "this template is in use by a schedule plan and cannot be deleted")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "requirement template deleted", nil)
}

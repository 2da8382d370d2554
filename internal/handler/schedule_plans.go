package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/scheduling"
	"github.com/arnavshah/shift-scheduler-core/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
)

// newRequirementID assigns ids to requirements instantiated from template
// shifts that carry no id of their own (see RequirementTemplate.Instantiate).
func newRequirementID() string {
	return uuid.NewString()
}

func (h *Handler) CreateSchedulePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                  string            `json:"name" validate:"required"`
		Description           string            `json:"description"`
		WeekStartDate         time.Time         `json:"weekStartDate" validate:"required"`
		SubmissionStartTime   time.Time         `json:"submissionStartTime" validate:"required"`
		SubmissionEndTime     time.Time         `json:"submissionEndTime" validate:"required"`
		ActiveStartTime       time.Time         `json:"activeStartTime" validate:"required"`
		ActiveEndTime         time.Time         `json:"activeEndTime" validate:"required"`
		RequirementTemplateID string            `json:"requirementTemplateId" validate:"required"`
		Constraints           *domain.Constraints `json:"constraints"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	constraints := domain.DefaultConstraints()
	if req.Constraints != nil {
		constraints = *req.Constraints
	}

	plan := &domain.SchedulePlan{
		Name:                  req.Name,
		Description:           req.Description,
		WeekStartDate:         req.WeekStartDate,
		SubmissionStartTime:   req.SubmissionStartTime,
		SubmissionEndTime:     req.SubmissionEndTime,
		ActiveStartTime:       req.ActiveStartTime,
		ActiveEndTime:         req.ActiveEndTime,
		RequirementTemplateID: req.RequirementTemplateID,
		Constraints:           constraints,
	}

	if err := utils.ValidateSchedulePlanTime(plan); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateSchedulePlan(plan); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_plans_requirement_template_id_fkey":
				h.errorResponse(w, r, "that requirement template does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule plan created", plan)
}

func (h *Handler) GetSchedulePlanByID(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)
	h.successResponse(w, r, "fetched schedule plan", plan)
}

func (h *Handler) DeleteSchedulePlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	if err := h.repository.DeleteSchedulePlan(plan.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule plan deleted", nil)
}

func (h *Handler) UpdateSchedulePlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		Name                *string             `json:"name"`
		Description         *string             `json:"description"`
		SubmissionStartTime *time.Time          `json:"submissionStartTime"`
		SubmissionEndTime   *time.Time          `json:"submissionEndTime"`
		ActiveStartTime     *time.Time          `json:"activeStartTime"`
		ActiveEndTime       *time.Time          `json:"activeEndTime"`
		Constraints         *domain.Constraints `json:"constraints"`
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
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.SubmissionStartTime != nil {
		plan.SubmissionStartTime = *req.SubmissionStartTime
	}
	if req.SubmissionEndTime != nil {
		plan.SubmissionEndTime = *req.SubmissionEndTime
	}
	if req.ActiveStartTime != nil {
		plan.ActiveStartTime = *req.ActiveStartTime
	}
	if req.ActiveEndTime != nil {
		plan.ActiveEndTime = *req.ActiveEndTime
	}
	if req.Constraints != nil {
		plan.Constraints = *req.Constraints
	}

	if err := utils.ValidateSchedulePlanTime(plan); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateSchedulePlan(plan); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule plan updated", plan)
}

func (h *Handler) GetAllSchedulePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.repository.GetAllSchedulePlans()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched schedule plans", plans)
}

func (h *Handler) SubmitYourAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.StaffAccount)
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		Windows []struct {
			DayOfWeek int `json:"dayOfWeek" validate:"gte=0,lte=6"`
			StartHour int `json:"startHour" validate:"gte=0,lte=23"`
			EndHour   int `json:"endHour" validate:"gte=1,lte=24,gtfield=StartHour"`
		} `json:"windows" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	submission := &domain.AvailabilitySubmission{
		SchedulePlanID: plan.ID,
		StaffID:        myInfo.StaffID,
		Windows:        make([]domain.AvailabilityWindow, len(req.Windows)),
	}

	for i, w := range req.Windows {
		submission.Windows[i] = domain.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		}
	}

	if err := utils.ValidateAvailabilityWindows(submission.Windows); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.InsertAvailabilitySubmission(submission); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability submitted", submission)
}

func (h *Handler) GetYourAvailabilitySubmission(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.StaffAccount)
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	submission, err := h.repository.GetAvailabilitySubmission(myInfo.StaffID, plan.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "you have not submitted availability for this plan yet", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "fetched your availability submission", submission)
}

func (h *Handler) GetSchedulePlanSubmissions(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	submissions, err := h.repository.GetAllSubmissionsBySchedulePlanID(plan.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched every submission for this plan", submissions)
}

// schedulingResultCacheKey is where a plan's VariantsResult is cached in
// Redis. The generate and regenerate handlers drop the key after each
// insert; a result persisted by cmd/genworker does not touch the cache, so
// an entry cached before it is served until its TTL expires.
func schedulingResultCacheKey(schedulePlanID string) string {
	return "scheduling_result_" + schedulePlanID
}

func (h *Handler) GetSchedulingResult(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	cacheKey := schedulingResultCacheKey(plan.ID)

	if cached, err := h.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var result domain.VariantsResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			h.successResponse(w, r, "fetched scheduling result", result)
			return
		}
	}

	result, err := h.repository.GetSchedulingResultBySchedulePlanID(plan.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "this plan has not been solved yet", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if cached, err := json.Marshal(result); err == nil {
		_ = h.redisClient.Set(ctx, cacheKey, cached, time.Duration(h.config.Scheduler.ResultCacheExpiration)*time.Second).Err()
	}

	h.successResponse(w, r, "fetched scheduling result", result)
}

// buildProblem assembles the engine's Problem from the plan's template, the
// current roster, and every availability submission on file. Shared by
// GenerateSchedulingResult and RegenerateSchedulingResult so both solve
// against the exact same snapshot.
func (h *Handler) buildProblem(plan *domain.SchedulePlan) (domain.Problem, error) {
	template, err := h.repository.GetRequirementTemplateByID(plan.RequirementTemplateID)
	if err != nil {
		return domain.Problem{}, err
	}

	roster, err := h.repository.GetAllStaff()
	if err != nil {
		return domain.Problem{}, err
	}

	submissions, err := h.repository.GetAllSubmissionsBySchedulePlanID(plan.ID)
	if err != nil {
		return domain.Problem{}, err
	}

	staff := make([]domain.Staff, len(roster))
	for i, s := range roster {
		staff[i] = *s
	}

	var availability []domain.AvailabilityWindow
	for _, sub := range submissions {
		availability = append(availability, sub.Windows...)
	}

	requirements := template.Instantiate(newRequirementID)

	return domain.Problem{
		Staff:         staff,
		Availability:  availability,
		Requirements:  requirements,
		WeekStartDate: plan.WeekStartDate,
		Constraints:   plan.Constraints,
	}, nil
}

func (h *Handler) GenerateSchedulingResult(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		NumCandidates  int   `json:"numCandidates"`
		NumTopVariants int   `json:"numTopVariants"`
		Seed           int64 `json:"seed"`
	}
	if err := h.readJSON(r, &req); err != nil && err.Error() != "EOF" {
		h.badRequest(w, r, err)
		return
	}

	problem, err := h.buildProblem(plan)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	numCandidates := req.NumCandidates
	if numCandidates <= 0 {
		numCandidates = h.config.Scheduler.NumCandidates
	}
	numTopVariants := req.NumTopVariants
	if numTopVariants <= 0 {
		numTopVariants = h.config.Scheduler.NumTopVariants
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	result := scheduling.SolveVariants(problem, numCandidates, numTopVariants, seed)

	if err := h.repository.InsertSchedulingResult(plan.ID, &result); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.invalidateSchedulingResultCache(r.Context(), plan.ID)

	h.successResponse(w, r, "schedule generated", result)
}

// invalidateSchedulingResultCache drops the cached VariantsResult for a
// plan after a fresh solve. Best-effort: a failed delete only means the
// cache serves a stale result until its TTL expires.
func (h *Handler) invalidateSchedulingResultCache(ctx context.Context, schedulePlanID string) {
	cacheCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()
	_ = h.redisClient.Del(cacheCtx, schedulingResultCacheKey(schedulePlanID)).Err()
}

// GenerateSchedulingResultAsync enqueues the same request onto the
// generation queue instead of solving inline, for callers that would
// rather poll GetSchedulingResult than hold the HTTP request open while
// a large candidate pool solves.
func (h *Handler) GenerateSchedulingResultAsync(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		NumCandidates  int   `json:"numCandidates"`
		NumTopVariants int   `json:"numTopVariants"`
		Seed           int64 `json:"seed"`
	}
	if err := h.readJSON(r, &req); err != nil && err.Error() != "EOF" {
		h.badRequest(w, r, err)
		return
	}

	body, err := json.Marshal(struct {
		SchedulePlanID string `json:"schedulePlanId"`
		NumCandidates  int    `json:"numCandidates"`
		NumTopVariants int    `json:"numTopVariants"`
		Seed           int64  `json:"seed"`
	}{
		SchedulePlanID: plan.ID,
		NumCandidates:  req.NumCandidates,
		NumTopVariants: req.NumTopVariants,
		Seed:           req.Seed,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.genChannel.PublishWithContext(
		ctx,
		"",
		"schedule_generation_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule generation queued", nil)
}

func (h *Handler) RegenerateSchedulingResult(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		VariantIndex int                 `json:"variantIndex"`
		Constraints  *domain.Constraints `json:"constraints"`
	}
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	existing, err := h.repository.GetSchedulingResultBySchedulePlanID(plan.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "this plan has no existing result to regenerate from")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.VariantIndex < 0 || req.VariantIndex >= len(existing.Variants) {
		h.badRequest(w, r, errors.New("variantIndex is out of range"))
		return
	}

	problem, err := h.buildProblem(plan)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	newConstraints := domain.Constraints{}
	if req.Constraints != nil {
		newConstraints = *req.Constraints
	}

	regenerated := scheduling.Regenerate(problem, existing.Variants[req.VariantIndex], newConstraints)

	result := &domain.VariantsResult{
		Variants:  []domain.ScheduleResult{regenerated},
		BestIndex: 0,
	}

	if err := h.repository.InsertSchedulingResult(plan.ID, result); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.invalidateSchedulingResultCache(r.Context(), plan.ID)

	h.successResponse(w, r, "schedule regenerated", result)
}

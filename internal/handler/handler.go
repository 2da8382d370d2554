package handler

import (
	"github.com/arnavshah/shift-scheduler-core/internal/config"
	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	genChannel  *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh, genCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		genChannel:  genCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a valid session cookie.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaff)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Patch("/", h.UpdateStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Delete("/", h.DeleteStaff)
			})
		})

		r.Route("/staff-accounts", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateStaffAccount)
			r.Get("/", h.GetAllStaffAccounts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffAccount)
				r.Get("/", h.GetStaffAccount)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateStaffAccount)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteStaffAccount)
			})
		})

		r.Route("/requirement-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Post("/", h.CreateRequirementTemplate)
			r.Get("/", h.GetAllRequirementTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.requirementTemplate)
				r.Get("/", h.GetRequirementTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Patch("/", h.UpdateRequirementTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Delete("/", h.DeleteRequirementTemplate)
			})
		})

		r.Route("/schedule-plans", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Post("/", h.CreateSchedulePlan)
			r.Get("/", h.GetAllSchedulePlans)
			r.Route("/{option}", func(r chi.Router) {
				r.Use(h.schedulePlan)
				r.Get("/", h.GetSchedulePlanByID)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Patch("/", h.UpdateSchedulePlan)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Delete("/", h.DeleteSchedulePlan)

				r.Route("/your-availability", func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.preventInactiveStaff)
					r.Use(h.preventSubmit2closedSchedulePlan)
					r.Post("/", h.SubmitYourAvailability)
					r.Get("/", h.GetYourAvailabilitySubmission)
				})

				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Get("/submissions", h.GetSchedulePlanSubmissions)

				r.Route("/result", func(r chi.Router) {
					r.Use(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin}))
					r.Get("/", h.GetSchedulingResult)
					r.Post("/generate", h.GenerateSchedulingResult)
					r.Post("/generate-async", h.GenerateSchedulingResultAsync)
					r.Post("/regenerate", h.RegenerateSchedulingResult)
				})
			})
		})
	})
}

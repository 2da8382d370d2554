package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/arnavshah/shift-scheduler-core/internal/config"
	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/repository"
	"github.com/arnavshah/shift-scheduler-core/internal/scheduling"
	"github.com/google/uuid"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func newRequirementID() string {
	return uuid.NewString()
}

// generationRequest is the body published to schedule_generation_queue by
// the API whenever a scheduler wants an asynchronous solve instead of
// waiting on the synchronous /generate route.
type generationRequest struct {
	SchedulePlanID string `json:"schedulePlanId"`
	NumCandidates  int    `json:"numCandidates"`
	NumTopVariants int    `json:"numTopVariants"`
	Seed           int64  `json:"seed"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	genCh, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open generation channel", "error", err)
		return
	}
	defer genCh.Close()

	q, err := genCh.QueueDeclare("schedule_generation_queue", true, false, false, false, nil)
	if err != nil {
		logger.Error("failed to declare generation queue", "error", err)
		return
	}

	mailCh, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open mail channel", "error", err)
		return
	}
	defer mailCh.Close()

	if _, err := mailCh.QueueDeclare("email_queue", true, false, false, false, nil); err != nil {
		logger.Error("failed to declare email queue", "error", err)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := genCh.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		logger.Error("failed to consume generation queue", "error", err)
		os.Exit(1)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-workerCtx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				handleGenerationRequest(logger, cfg, repo, mailCh, msg)
			}
		}
	}()

	logger.Info("waiting for schedule generation requests (ctrl+c to exit)")
	<-sigChan

	logger.Info("shutting down generation worker")
	workerCancel()
	wg.Wait()
	logger.Info("generation worker shut down cleanly")
}

func handleGenerationRequest(logger *slog.Logger, cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, msg amqp.Delivery) {
	var req generationRequest
	if err := json.Unmarshal(msg.Body, &req); err != nil {
		logger.Error("failed to unmarshal generation request", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	plan, err := repo.GetSchedulePlanByID(req.SchedulePlanID)
	if err != nil {
		logger.Error("failed to fetch schedule plan", "error", err, "schedulePlanId", req.SchedulePlanID)
		_ = msg.Nack(false, false)
		return
	}

	template, err := repo.GetRequirementTemplateByID(plan.RequirementTemplateID)
	if err != nil {
		logger.Error("failed to fetch requirement template", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	roster, err := repo.GetAllStaff()
	if err != nil {
		logger.Error("failed to fetch staff roster", "error", err)
		_ = msg.Nack(false, false)
		return
	}
	staff := make([]domain.Staff, len(roster))
	for i, s := range roster {
		staff[i] = *s
	}

	submissions, err := repo.GetAllSubmissionsBySchedulePlanID(plan.ID)
	if err != nil {
		logger.Error("failed to fetch availability submissions", "error", err)
		_ = msg.Nack(false, false)
		return
	}
	var availability []domain.AvailabilityWindow
	for _, sub := range submissions {
		availability = append(availability, sub.Windows...)
	}

	problem := domain.Problem{
		Staff:         staff,
		Availability:  availability,
		Requirements:  template.Instantiate(newRequirementID),
		WeekStartDate: plan.WeekStartDate,
		Constraints:   plan.Constraints,
	}

	numCandidates := req.NumCandidates
	if numCandidates <= 0 {
		numCandidates = cfg.Scheduler.NumCandidates
	}
	numTopVariants := req.NumTopVariants
	if numTopVariants <= 0 {
		numTopVariants = cfg.Scheduler.NumTopVariants
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	result := scheduling.SolveVariants(problem, numCandidates, numTopVariants, seed)

	if err := repo.InsertSchedulingResult(plan.ID, &result); err != nil {
		logger.Error("failed to persist scheduling result", "error", err)
		_ = msg.Nack(false, true)
		return
	}

	best := result.Variants[result.BestIndex]
	mailMessage := domain.MailMessage{
		Type: "schedule_generated",
		To:   cfg.InitialAdmin.Email,
		Data: domain.ScheduleGeneratedMailData{
			PlanName:           plan.Name,
			CoveragePercentage: best.Stats.CoveragePercentage,
			UnfilledCount:      best.Stats.TotalShifts - best.Stats.FilledShifts,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		logger.Error("failed to marshal completion mail", "error", err)
		_ = msg.Ack(false)
		return
	}

	publishCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := mailCh.PublishWithContext(publishCtx, "", "email_queue", true, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        mailData,
	}); err != nil {
		logger.Error("failed to publish completion mail", "error", err)
	}

	logger.Info("schedule generated", "schedulePlanId", plan.ID, "coverage", best.Stats.CoveragePercentage)
	_ = msg.Ack(false)
}

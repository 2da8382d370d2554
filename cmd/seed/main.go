package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/config"
	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/repository"
	"github.com/arnavshah/shift-scheduler-core/internal/seed"
	"github.com/arnavshah/shift-scheduler-core/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var schedulePlanID string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random staff, 2: insert random requirement templates, 3: insert random schedule plans, 4: insert submissions, 5: insert full demo dataset)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&schedulePlanID, "schedule-plan-id", "", "schedule plan id to insert random submissions against")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
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

	switch op {
	case 0:
		logger.Error("no operation specified")
	case 1:
		if n <= 0 {
			logger.Error("n must be a positive number of staff to insert")
			break
		}
		cnt := 0
		for i := 0; i < n; i++ {
			staff := utils.GenerateRandomStaff()
			if err := repo.CreateStaff(staff); err != nil {
				logger.Error("failed to insert staff", "error", err)
				continue
			}
			cnt++
		}
		logger.Info("inserted staff", "count", cnt)
	case 2:
		if n <= 0 {
			logger.Error("n must be a positive number of templates to insert")
			break
		}
		cnt := 0
		for i := 0; i < n; i++ {
			tmpl := utils.GenerateRandomRequirementTemplate()
			if err := repo.CreateRequirementTemplate(tmpl); err != nil {
				logger.Error("failed to insert requirement template", "error", err)
				continue
			}
			cnt++
		}
		logger.Info("inserted requirement templates", "count", cnt)
	case 3:
		if n <= 0 {
			logger.Error("n must be a positive number of schedule plans to insert")
			break
		}
		templates, err := repo.GetAllRequirementTemplates()
		if err != nil {
			logger.Error("failed to fetch requirement templates", "error", err)
			return
		}
		if len(templates) == 0 {
			logger.Error("no requirement templates exist yet; run -op 2 first")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			tmpl := templates[rand.Intn(len(templates))]
			plan := utils.GenerateRandomSchedulePlan(tmpl.ID)
			if err := repo.CreateSchedulePlan(plan); err != nil {
				logger.Error("failed to insert schedule plan", "error", err)
				continue
			}
			cnt++
		}
		logger.Info("inserted schedule plans", "count", cnt)
	case 4:
		if schedulePlanID == "" {
			logger.Error("schedule-plan-id is required")
			return
		}

		plan, err := repo.GetSchedulePlanByID(schedulePlanID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				logger.Error("schedule plan does not exist", "schedulePlanId", schedulePlanID)
			default:
				logger.Error("failed to fetch schedule plan", "error", err)
			}
			return
		}

		roster, err := repo.GetAllStaff()
		if err != nil {
			logger.Error("failed to fetch staff", "error", err)
			return
		}

		cnt := 0
		for _, staff := range roster {
			submission := &domain.AvailabilitySubmission{
				SchedulePlanID: plan.ID,
				StaffID:        staff.ID,
				Windows:        utils.GenerateRandomAvailabilityWindows(),
			}
			if err := repo.InsertAvailabilitySubmission(submission); err != nil {
				logger.Error("failed to insert submission", "error", err)
				continue
			}
			cnt++
		}
		logger.Info("inserted availability submissions", "count", cnt)
	case 5:
		seed.SeedDemoData(repo, n, cfg.Seed.Staff.Password)
	default:
		logger.Error("unrecognized operation", "op", op)
	}
}

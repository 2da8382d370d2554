package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/arnavshah/shift-scheduler-core/internal/config"
	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/handler"
	"github.com/arnavshah/shift-scheduler-core/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

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

	// sql.Open only allocates the pool object; it does not connect, so
	// ping explicitly to fail fast on a bad DSN.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := ensureInitialAdmin(repo, cfg); err != nil {
		logger.Error("failed to ensure initial admin", "error", err)
		return
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

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

	genCh, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open generation channel", "error", err)
		return
	}
	defer genCh.Close()

	if _, err := genCh.QueueDeclare("schedule_generation_queue", true, false, false, false, nil); err != nil {
		logger.Error("failed to declare schedule generation queue", "error", err)
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	h, err := handler.NewHandler(cfg, repo, mailCh, genCh, rdb)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			return
		}
	}()

	<-quit
	logger.Info("shutting down server")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	logger.Info("server shut down cleanly")
}

// ensureInitialAdmin makes sure a bootstrap admin staff/account pair exists
// so the very first deployment has somewhere to log in from.
func ensureInitialAdmin(repo *repository.Repository, cfg *config.Config) error {
	_, err := repo.GetStaffAccountByUsername(cfg.InitialAdmin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	staff := &domain.Staff{
		Name:            cfg.InitialAdmin.FullName,
		Color:           "#1f2937",
		Qualifications:  []string{},
		MaxHoursPerWeek: 40,
		MinHoursPerWeek: 0,
		EmploymentType:  domain.EmploymentFullTime,
		Email:           cfg.InitialAdmin.Email,
	}
	if err := repo.CreateStaff(staff); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.StaffAccount{
		StaffID:      staff.ID,
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
		Email:        cfg.InitialAdmin.Email,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	if err := repo.CreateStaffAccount(admin); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_accounts_username_key" {
			// Lost a startup race against another replica; already created.
			return nil
		}
		return err
	}

	return nil
}

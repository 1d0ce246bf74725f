package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "naplata/internal/adapter/http"
	"naplata/internal/adapter/mailer"
	"naplata/internal/adapter/postgres"
	"naplata/internal/adapter/sms"
	"naplata/internal/adapter/usecase"
	"naplata/internal/config"
	"naplata/internal/core/port"
	"naplata/internal/db"
	"naplata/internal/jobs"
)

// main is the entry point of the billing panel backend. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, repositories and notification senders, starts the
// reminder scheduler and the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	seed := flag.Bool("seed", false, "insert demo data and exit")
	flag.Parse()

	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if *seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data inserted")
		exitCode = 0
		return
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	hostingRepo := postgres.NewHostingRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)

	mail := mailer.NewResendMailer(cfg.Mail.APIKey, cfg.Mail.From)
	var smsSender port.SMSSender = sms.Disabled{}
	if cfg.SMS.GatewayURL != "" {
		smsSender = sms.NewGatewaySender(cfg.SMS.GatewayURL, cfg.SMS.APIKey, cfg.SMS.Sender)
	}

	customerSvc := usecase.NewCustomerService(customerRepo)
	installmentSvc := usecase.NewInstallmentService(installmentRepo)
	hostingSvc := usecase.NewHostingService(hostingRepo)
	campaignSvc := usecase.NewCampaignService(campaignRepo)
	reminderSvc := usecase.NewReminderService(
		installmentRepo, hostingRepo, mail, smsSender, logger, cfg.Jobs.HostingLookaheadDays)

	if cfg.Jobs.Enabled {
		runner := jobs.New(ctx, logger)
		jobs.StartReminderLoops(runner, reminderSvc, logger, cfg.Jobs.Interval)
	}

	handler := httpadapter.NewHandler(
		customerSvc, installmentSvc, hostingSvc, campaignSvc, reminderSvc,
		logger, cfg.Jobs.CronSecret)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

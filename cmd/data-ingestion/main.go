// Package main provides the entry point for the data ingestion service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/datasource"
	"github.com/yourusername/gridiron-edge/internal/health"
	"github.com/yourusername/gridiron-edge/internal/ingestion"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/scheduler"
)

const serviceName = "gridiron-edge-ingestion"

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		once       = flag.Bool("once", false, "Run a single sync and exit instead of scheduling")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	logg := logger.NewLogger(cfg.App.LogLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		logg.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		logg.Fatalf("Failed to initialize repositories: %v", err)
	}

	svc := buildIngestionService(cfg, repos, logg)

	if *once {
		for _, season := range cfg.Ingestion.Seasons {
			if _, err := svc.SyncSeason(ctx, season); err != nil {
				logg.WithError(err).WithField("season", season).Error("Season sync failed")
			}
		}
		return
	}

	healthServer := startHealthServer(ctx, cfg, db, logg)

	sched := scheduler.NewScheduler(svc, logg)
	if err := sched.ScheduleSeasonSync(cfg.Ingestion.Schedule, cfg.Ingestion.Seasons); err != nil {
		logg.Fatalf("Failed to schedule season sync: %v", err)
	}
	if err := sched.Start(); err != nil {
		logg.Fatalf("Failed to start scheduler: %v", err)
	}
	healthServer.SetReady(true)

	logg.WithFields(logrus.Fields{
		"schedule": cfg.Ingestion.Schedule,
		"seasons":  cfg.Ingestion.Seasons,
	}).Info("Ingestion service running")

	waitForShutdown(logg)

	healthServer.SetReady(false)
	if err := sched.Stop(); err != nil {
		logg.WithError(err).Error("Scheduler shutdown error")
	}
	cancel()
	time.Sleep(100 * time.Millisecond)
	logg.Info("Ingestion service stopped")
}

func buildIngestionService(cfg *config.Config, repos *repository.Repositories, logg *logrus.Logger) *ingestion.Service {
	httpCfg := datasource.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.Provider.RetryAttempts
	httpCfg.RateLimit = cfg.Provider.RateLimit

	stdLogger := log.New(logg.Writer(), "", 0)
	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, stdLogger)
	source := datasource.NewCFBDClient(httpClient, cfg.Provider.BaseURL, cfg.Provider.APIKey, true, stdLogger)

	svc, err := ingestion.NewService(source, repos.Team, repos.Game, logg)
	if err != nil {
		logg.Fatalf("Failed to create ingestion service: %v", err)
	}
	return svc
}

func startHealthServer(ctx context.Context, cfg *config.Config, db *database.DB, logg *logrus.Logger) *health.Server {
	srv := health.NewServer(health.Config{
		ServiceName: serviceName,
		Port:        portString(cfg.Metrics.Port),
		MetricsPath: cfg.Metrics.Path,
		Logger:      logg,
		DB:          db,
	})
	if err := srv.Start(ctx); err != nil {
		logg.Fatalf("Failed to start health server: %v", err)
	}
	return srv
}

func portString(port int) string {
	if port <= 0 {
		return ""
	}
	return strconv.Itoa(port)
}

func waitForShutdown(logg *logrus.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig
	logg.WithField("signal", received.String()).Info("Shutdown signal received")
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

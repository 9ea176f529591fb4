// Package main provides the entry point for the backtest regression harness.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/backtest"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/factors"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		seasons    = flag.String("seasons", "", "Comma-separated seasons override (e.g. 2022,2023)")
		weights    = flag.String("weights", "", "Weights version override: legacy or enhanced")
		output     = flag.String("output", "", "Output path override for the JSON report")
		minGames   = flag.Int("min-games", 0, "Minimum gradeable games override")
		persist    = flag.Bool("persist", true, "Store the result through the repository layer")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.App.LogLevel)
	ctx := context.Background()

	applyOverrides(cfg, *seasons, *weights, *output, *minGames, log)

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	result, teams := run(ctx, cfg, repos, log)

	fmt.Print(backtest.GenerateConsoleReport(result))

	if cfg.Backtest.OutputPath != "" {
		if err := backtest.ExportToJSON(result, cfg.Backtest.OutputPath); err != nil {
			log.WithError(err).Error("Failed to export JSON report")
		}
	}
	if *persist {
		if err := repos.BacktestResult.Insert(ctx, result); err != nil {
			log.WithError(err).Error("Failed to store backtest result")
		}
		for _, team := range teams {
			if err := repos.Team.UpdateRating(ctx, team); err != nil {
				log.WithError(err).WithField("team", team.Name).Error("Failed to store team rating")
			}
		}
	}

	if result.Status == models.BacktestFail {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, repos *repository.Repositories, log *logrus.Logger) (*models.BacktestResult, []*models.Team) {
	teams, err := repos.Team.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load teams: %v", err)
	}
	teamsByID := make(map[uuid.UUID]*models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	games, err := repos.Game.GetCompletedBySeasons(ctx, cfg.Backtest.Seasons)
	if err != nil {
		log.Fatalf("Failed to load games: %v", err)
	}

	log.WithFields(logrus.Fields{
		"seasons": cfg.Backtest.Seasons,
		"games":   len(games),
		"teams":   len(teams),
		"weights": cfg.Prediction.WeightsVersion,
	}).Info("Starting backtest")

	buildStart := time.Now()
	snapshot := ratings.BuildSnapshotWithTeams(games, teamsByID)
	metrics.RatingsPassDuration.Observe(time.Since(buildStart).Seconds())
	metrics.RatedTeams.Set(float64(len(snapshot.Ratings())))

	engine := predictor.NewEngine(factors.ByVersion(cfg.Prediction.WeightsVersion), snapshot, log)

	harness, err := backtest.NewHarness(engine, backtest.Config{
		MinimumGames: cfg.Backtest.MinimumGames,
		Workers:      cfg.Backtest.Workers,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create harness: %v", err)
	}

	return harness.Run(ctx, games, teamsByID), teams
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			logrus.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			logrus.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func applyOverrides(cfg *config.Config, seasons, weights, output string, minGames int, log *logrus.Logger) {
	if seasons != "" {
		parsed, err := parseSeasons(seasons)
		if err != nil {
			log.Fatalf("Invalid seasons flag: %v", err)
		}
		cfg.Backtest.Seasons = parsed
	}
	if weights != "" {
		cfg.Prediction.WeightsVersion = weights
	}
	if output != "" {
		cfg.Backtest.OutputPath = output
	}
	if minGames > 0 {
		cfg.Backtest.MinimumGames = minGames
	}
}

func parseSeasons(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	seasons := make([]int, 0, len(parts))
	for _, p := range parts {
		season, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid season %q", p)
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

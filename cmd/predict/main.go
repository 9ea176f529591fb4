// Package main provides the matchup prediction CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/factors"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/roster"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		homeTeam   = flag.String("home", "", "Home team name (single-matchup mode)")
		awayTeam   = flag.String("away", "", "Away team name (single-matchup mode)")
		spread     = flag.Float64("spread", 0, "Market spread, positive = away favored")
		hasSpread  = flag.Bool("has-spread", false, "Set when -spread carries a real line")
		overUnder  = flag.Float64("over-under", 0, "Market total (0 = none)")
		week       = flag.Int("week", 1, "Week of the matchup")
		neutral    = flag.Bool("neutral", false, "Neutral-site game")
		upcoming   = flag.Int("upcoming", 0, "Predict the next N stored upcoming games instead")
		weights    = flag.String("weights", "", "Weights version override: legacy or enhanced")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *weights != "" {
		cfg.Prediction.WeightsVersion = *weights
	}
	log := logger.NewLogger(cfg.App.LogLevel)
	ctx := context.Background()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	engine, teamsByName := buildEngine(ctx, cfg, repos, log)

	rosterClient, err := roster.NewClient(&cfg.Roster, log)
	if err != nil {
		log.Fatalf("Failed to create roster client: %v", err)
	}

	switch {
	case *upcoming > 0:
		predictUpcoming(ctx, cfg, repos, engine, rosterClient, *upcoming, log)
	case *homeTeam != "" && *awayTeam != "":
		var market *float64
		if *hasSpread {
			market = spread
		}
		var total *float64
		if *overUnder > 0 {
			total = overUnder
		}
		predictMatchup(ctx, cfg, engine, rosterClient, teamsByName, *homeTeam, *awayTeam, market, total, *week, *neutral, log)
	default:
		log.Fatal("Either -home and -away, or -upcoming N, is required")
	}
}

func buildEngine(ctx context.Context, cfg *config.Config, repos *repository.Repositories, log *logrus.Logger) (*predictor.Engine, map[string]*models.Team) {
	teams, err := repos.Team.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load teams: %v", err)
	}
	teamsByName := make(map[string]*models.Team, len(teams))
	for _, t := range teams {
		teamsByName[t.Name] = t
	}

	games, err := repos.Game.GetCompletedBySeasons(ctx, cfg.Backtest.Seasons)
	if err != nil {
		log.Fatalf("Failed to load game history: %v", err)
	}

	buildStart := time.Now()
	snapshot := ratings.BuildSnapshot(games)
	metrics.RatingsPassDuration.Observe(time.Since(buildStart).Seconds())
	metrics.RatedTeams.Set(float64(len(snapshot.Ratings())))

	log.WithFields(logrus.Fields{
		"games_processed": snapshot.GamesProcessed(),
		"weights":         cfg.Prediction.WeightsVersion,
	}).Info("Ratings snapshot built")

	return predictor.NewEngine(factors.ByVersion(cfg.Prediction.WeightsVersion), snapshot, log), teamsByName
}

func predictMatchup(ctx context.Context, cfg *config.Config, engine *predictor.Engine, rosterClient *roster.Client, teamsByName map[string]*models.Team, homeName, awayName string, market, total *float64, week int, neutral bool, log *logrus.Logger) {
	home, ok := teamsByName[homeName]
	if !ok {
		log.Fatalf("Unknown home team: %s", homeName)
	}
	away, ok := teamsByName[awayName]
	if !ok {
		log.Fatalf("Unknown away team: %s", awayName)
	}

	season := currentSeason(cfg)
	req := predictor.Request{
		HomeTeam:       home.Name,
		AwayTeam:       away.Name,
		HomeTeamID:     home.ID,
		AwayTeamID:     away.ID,
		HomeConference: home.Conference,
		AwayConference: away.Conference,
		MarketSpread:   market,
		OverUnder:      total,
		IsNeutralSite:  neutral,
		Week:           week,
		Roster:         rosterClient.Signals(ctx, home.Name, away.Name, season, week),
	}

	result := engine.Predict(ctx, req)
	fmt.Print(renderPrediction(&result))
}

func predictUpcoming(ctx context.Context, cfg *config.Config, repos *repository.Repositories, engine *predictor.Engine, rosterClient *roster.Client, limit int, log *logrus.Logger) {
	teams, err := repos.Team.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load teams: %v", err)
	}
	teamsByID := make(map[string]*models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID.String()] = t
	}

	games, err := repos.Game.GetUpcoming(ctx, limit)
	if err != nil {
		log.Fatalf("Failed to load upcoming games: %v", err)
	}
	if len(games) == 0 {
		log.Info("No upcoming games stored")
		return
	}

	for _, game := range games {
		home, ok := teamsByID[game.HomeTeamID.String()]
		if !ok {
			continue
		}
		away, ok := teamsByID[game.AwayTeamID.String()]
		if !ok {
			continue
		}

		gameID := game.ID
		req := predictor.Request{
			HomeTeam:       home.Name,
			AwayTeam:       away.Name,
			HomeTeamID:     home.ID,
			AwayTeamID:     away.ID,
			HomeConference: home.Conference,
			AwayConference: away.Conference,
			Weather:        game.Weather,
			MarketSpread:   game.Spread,
			OverUnder:      game.OverUnder,
			IsNeutralSite:  game.IsNeutralSite,
			Week:           game.Week,
			Roster:         rosterClient.Signals(ctx, home.Name, away.Name, game.Season, game.Week),
			GameID:         &gameID,
		}

		result := engine.Predict(ctx, req)
		fmt.Print(renderPrediction(&result))

		if err := repos.Prediction.Insert(ctx, &result); err != nil {
			log.WithError(err).WithField("game_id", game.ID).Error("Failed to store prediction")
		}
	}
}

func renderPrediction(result *models.PredictionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s at %s\n", result.AwayTeam, result.HomeTeam)
	if result.FavorsHome() {
		fmt.Fprintf(&b, "  Model: %s by %.1f\n", result.HomeTeam, result.Spread)
	} else if result.Spread < 0 {
		fmt.Fprintf(&b, "  Model: %s by %.1f\n", result.AwayTeam, -result.Spread)
	} else {
		fmt.Fprintf(&b, "  Model: pick'em\n")
	}
	fmt.Fprintf(&b, "  Confidence: %s\n", result.Confidence)
	if result.Edge != nil {
		fmt.Fprintf(&b, "  Edge vs market: %.1f\n", *result.Edge)
	}
	if result.RecommendedBet != nil {
		fmt.Fprintf(&b, "  Recommendation: %s\n", *result.RecommendedBet)
	}
	if result.TotalPick != nil {
		fmt.Fprintf(&b, "  Total: %s\n", *result.TotalPick)
	}
	for _, factor := range result.KeyFactors {
		fmt.Fprintf(&b, "    - %s\n", factor)
	}
	return b.String()
}

func currentSeason(cfg *config.Config) int {
	if n := len(cfg.Backtest.Seasons); n > 0 {
		return cfg.Backtest.Seasons[n-1]
	}
	return 0
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

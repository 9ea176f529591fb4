// Package backtest replays the prediction engine against completed games
// and grades it against the spread and the profitability gates.
package backtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
)

// Config holds harness settings
type Config struct {
	MinimumGames int
	Workers      int
}

// Validate validates harness configuration
func (c Config) Validate() error {
	if c.MinimumGames <= 0 {
		return fmt.Errorf("minimum games must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive")
	}
	return nil
}

// DefaultConfig returns the standard harness settings
func DefaultConfig() Config {
	return Config{
		MinimumGames: DefaultMinimumGames,
		Workers:      8,
	}
}

// Harness drives the prediction engine over a historical corpus
type Harness struct {
	engine *predictor.Engine
	cfg    Config
	logger *logrus.Logger
}

// NewHarness creates a backtest harness
func NewHarness(engine *predictor.Engine, cfg Config, logger *logrus.Logger) (*Harness, error) {
	if engine == nil {
		return nil, fmt.Errorf("prediction engine is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Harness{engine: engine, cfg: cfg, logger: logger}, nil
}

type gameOutcome struct {
	graded   bool
	modelWin bool
}

// Run replays every gradeable game through the engine and reports ATS
// accuracy against the profitability gates. Games missing scores or a
// market line are skipped and counted, never treated as losses; a bad
// record can never abort the batch.
func (h *Harness) Run(ctx context.Context, games []*models.Game, teams map[uuid.UUID]*models.Team) *models.BacktestResult {
	start := time.Now()
	result := &models.BacktestResult{
		ID:             uuid.New(),
		RunDate:        start.UTC(),
		WeightsVersion: h.engine.WeightsVersion(),
	}

	outcomes := make([]gameOutcome, len(games))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < h.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = h.evaluateGame(ctx, games[i], teams)
			}
		}()
	}
	for i := range games {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, o := range outcomes {
		if !o.graded {
			result.SkippedGames++
			continue
		}
		result.GamesTested++
		if o.modelWin {
			result.ModelWins++
		}
	}

	h.grade(result)

	metrics.BacktestRunsTotal.WithLabelValues(string(result.Status)).Inc()
	metrics.LatestATSAccuracy.Set(result.ATSAccuracy)
	metrics.BacktestDuration.Observe(time.Since(start).Seconds())

	h.logger.WithFields(logrus.Fields{
		"games":    result.GamesTested,
		"skipped":  result.SkippedGames,
		"accuracy": result.ATSAccuracy,
		"status":   result.Status,
	}).Info("Backtest run complete")

	return result
}

// evaluateGame predicts with pre-game inputs only and grades the model's
// error against the market's. An exact error tie counts as a model win.
func (h *Harness) evaluateGame(ctx context.Context, game *models.Game, teams map[uuid.UUID]*models.Team) gameOutcome {
	if game == nil || !game.IsGradeable() {
		return gameOutcome{}
	}

	req := predictor.Request{
		HomeTeamID:    game.HomeTeamID,
		AwayTeamID:    game.AwayTeamID,
		Weather:       game.Weather,
		MarketSpread:  game.Spread,
		OverUnder:     game.OverUnder,
		IsNeutralSite: game.IsNeutralSite,
		Week:          game.Week,
		GameID:        &game.ID,
	}
	if home, ok := teams[game.HomeTeamID]; ok {
		req.HomeTeam = home.Name
		req.HomeConference = home.Conference
	}
	if away, ok := teams[game.AwayTeamID]; ok {
		req.AwayTeam = away.Name
		req.AwayConference = away.Conference
	}

	prediction := h.engine.Predict(ctx, req)

	actualMargin := float64(game.HomeMargin())
	marketHome, _ := game.MarketHomeSpread()

	modelError := abs(actualMargin - prediction.Spread)
	marketError := abs(actualMargin - marketHome)

	return gameOutcome{graded: true, modelWin: modelError <= marketError}
}

// grade applies the three-tier policy: FAIL below break-even or below the
// minimum sample, WARNING between break-even and target, PASS at target.
func (h *Harness) grade(result *models.BacktestResult) {
	if result.GamesTested < h.cfg.MinimumGames {
		result.Status = models.BacktestFail
		result.Message = fmt.Sprintf(
			"insufficient sample: %d gradeable games, minimum %d required",
			result.GamesTested, h.cfg.MinimumGames,
		)
		return
	}

	result.ATSAccuracy = float64(result.ModelWins) / float64(result.GamesTested)
	result.BeatsBreakEven = result.ATSAccuracy >= BreakEvenAccuracy
	result.BeatsBaseline = result.ATSAccuracy >= BaselineAccuracy
	result.BeatsTarget = result.ATSAccuracy >= TargetAccuracy

	switch {
	case !result.BeatsBreakEven:
		result.Status = models.BacktestFail
		result.Message = fmt.Sprintf(
			"ATS accuracy %.1f%% is below the %.1f%% break-even threshold",
			result.ATSAccuracy*100, BreakEvenAccuracy*100,
		)
	case !result.BeatsTarget:
		result.Status = models.BacktestWarning
		result.Message = fmt.Sprintf(
			"ATS accuracy %.1f%% clears break-even (%.1f%%) but not the %.1f%% target (baseline %.1f%%)",
			result.ATSAccuracy*100, BreakEvenAccuracy*100, TargetAccuracy*100, BaselineAccuracy*100,
		)
	default:
		result.Status = models.BacktestPass
		result.Message = fmt.Sprintf(
			"ATS accuracy %.1f%% clears the %.1f%% target over %d games",
			result.ATSAccuracy*100, TargetAccuracy*100, result.GamesTested,
		)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

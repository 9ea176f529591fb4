package backtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/factors"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func testHarness(t *testing.T, cfg Config) *Harness {
	t.Helper()
	engine := predictor.NewEngine(factors.LegacyWeights(), nil, quietLogger())
	h, err := NewHarness(engine, cfg, quietLogger())
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	return h
}

// neutralGame builds a completed neutral-site game with no weather or
// conference signal, so the legacy model predicts exactly zero and grading
// reduces to margin-vs-line arithmetic.
func neutralGame(homeMargin int, spread float64) *models.Game {
	homeScore := 20 + homeMargin
	awayScore := 20
	return &models.Game{
		ID:            uuid.New(),
		HomeTeamID:    uuid.New(),
		AwayTeamID:    uuid.New(),
		Season:        2023,
		Week:          8,
		StartDate:     time.Now(),
		Completed:     true,
		HomeScore:     &homeScore,
		AwayScore:     &awayScore,
		Spread:        &spread,
		IsNeutralSite: true,
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{MinimumGames: 0, Workers: 4}).Validate(); err == nil {
		t.Fatalf("zero minimum games must be rejected")
	}
	if err := (Config{MinimumGames: 15, Workers: 0}).Validate(); err == nil {
		t.Fatalf("zero workers must be rejected")
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestRunFailsOnInsufficientSample(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 15, Workers: 4})

	games := make([]*models.Game, 0, 10)
	for i := 0; i < 10; i++ {
		games = append(games, neutralGame(1, -2))
	}

	result := h.Run(context.Background(), games, nil)
	if result.Status != models.BacktestFail {
		t.Fatalf("expected FAIL, got %s", result.Status)
	}
	if !strings.Contains(result.Message, "10") || !strings.Contains(result.Message, "15") {
		t.Fatalf("message must cite the sample and the minimum: %q", result.Message)
	}
}

func TestRunSkipsUngradeableGamesWithoutFailing(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 15, Workers: 4})

	games := make([]*models.Game, 0, 20)
	for i := 0; i < 15; i++ {
		games = append(games, neutralGame(0, -2)) // model error ties market error
	}
	noLine := neutralGame(3, 0)
	noLine.Spread = nil
	noScores := neutralGame(3, -2)
	noScores.HomeScore = nil
	noScores.AwayScore = nil
	games = append(games, noLine, noScores, nil)

	result := h.Run(context.Background(), games, nil)
	if result.GamesTested != 15 {
		t.Fatalf("expected 15 graded games, got %d", result.GamesTested)
	}
	if result.SkippedGames != 3 {
		t.Fatalf("expected 3 skipped games, got %d", result.SkippedGames)
	}
	if result.Status != models.BacktestPass {
		t.Fatalf("skips must not count as losses: %s (%s)", result.Status, result.Message)
	}
}

// A one-point home win against a two-point line leaves the model and the
// market each off by exactly one: the tie-or-better rule credits the model.
func TestRunCountsErrorTiesAsModelWins(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 15, Workers: 2})

	games := make([]*models.Game, 0, 15)
	for i := 0; i < 15; i++ {
		games = append(games, neutralGame(1, -2))
	}

	result := h.Run(context.Background(), games, nil)
	if result.ModelWins != 15 {
		t.Fatalf("error ties must grade as model wins, got %d of %d", result.ModelWins, result.GamesTested)
	}
	if result.ATSAccuracy != 1.0 {
		t.Fatalf("expected 100%% accuracy, got %.3f", result.ATSAccuracy)
	}
}

func TestRunGradesWarningBand(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 15, Workers: 4})

	games := make([]*models.Game, 0, 19)
	for i := 0; i < 10; i++ {
		games = append(games, neutralGame(0, -2)) // model exact, win
	}
	for i := 0; i < 9; i++ {
		games = append(games, neutralGame(3, -2)) // market closer, loss
	}

	result := h.Run(context.Background(), games, nil)
	if result.Status != models.BacktestWarning {
		t.Fatalf("10-9 (52.6%%) should grade WARNING, got %s (%s)", result.Status, result.Message)
	}
	if !result.BeatsBreakEven || result.BeatsTarget {
		t.Fatalf("warning band must clear break-even but not target: %+v", result)
	}
	if !strings.Contains(result.Message, "52.4") || !strings.Contains(result.Message, "54.2") {
		t.Fatalf("message must cite both thresholds: %q", result.Message)
	}
}

func TestRunGradesFailBelowBreakEven(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 15, Workers: 4})

	games := make([]*models.Game, 0, 15)
	for i := 0; i < 5; i++ {
		games = append(games, neutralGame(0, -2))
	}
	for i := 0; i < 10; i++ {
		games = append(games, neutralGame(3, -2))
	}

	result := h.Run(context.Background(), games, nil)
	if result.Status != models.BacktestFail {
		t.Fatalf("33%% should grade FAIL, got %s", result.Status)
	}
	if result.BeatsBreakEven {
		t.Fatalf("a failing run cannot clear break-even")
	}
	if result.WeightsVersion != "legacy-v1" {
		t.Fatalf("result must record the tuning under test, got %q", result.WeightsVersion)
	}
}

func TestRunUsesTeamMetadata(t *testing.T) {
	h := testHarness(t, Config{MinimumGames: 1, Workers: 1})

	game := neutralGame(7, -2)
	teams := map[uuid.UUID]*models.Team{
		game.HomeTeamID: {ID: game.HomeTeamID, Name: "Alabama", Conference: "SEC"},
		game.AwayTeamID: {ID: game.AwayTeamID, Name: "Auburn", Conference: "SEC"},
	}

	result := h.Run(context.Background(), []*models.Game{game}, teams)
	if result.GamesTested != 1 {
		t.Fatalf("expected the game to grade, got %d tested", result.GamesTested)
	}
}

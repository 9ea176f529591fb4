package models

import (
	"time"

	"github.com/google/uuid"
)

// BacktestStatus classifies a validation run against the profitability gates
type BacktestStatus string

// Backtest statuses
const (
	BacktestPass    BacktestStatus = "PASS"
	BacktestWarning BacktestStatus = "WARNING"
	BacktestFail    BacktestStatus = "FAIL"
)

// BacktestResult summarizes one harness run over a corpus of completed games
type BacktestResult struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	RunDate         time.Time      `db:"run_date" json:"run_date"`
	GamesTested     int            `db:"games_tested" json:"games_tested"`
	SkippedGames    int            `db:"skipped_games" json:"skipped_games"`
	ModelWins       int            `db:"model_wins" json:"model_wins"`
	ATSAccuracy     float64        `db:"ats_accuracy" json:"ats_accuracy"`
	BeatsBreakEven  bool           `db:"beats_break_even" json:"beats_break_even"`
	BeatsBaseline   bool           `db:"beats_baseline" json:"beats_baseline"`
	BeatsTarget     bool           `db:"beats_target" json:"beats_target"`
	Status          BacktestStatus `db:"status" json:"status"`
	Message         string         `db:"message" json:"message"`
	WeightsVersion  string         `db:"weights_version" json:"weights_version"`
}

// Profitable reports whether the run cleared the break-even gate
func (r *BacktestResult) Profitable() bool {
	return r.BeatsBreakEven
}

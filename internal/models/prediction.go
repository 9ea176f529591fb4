package models

import (
	"time"

	"github.com/google/uuid"
)

// Confidence buckets a prediction by how many factors fired and how large
// the predicted spread is
type Confidence string

// Confidence tiers
const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// FactorScore is one named, bounded, signed contribution to the predicted
// spread. Positive values favor the home team. Produced fresh per prediction
// and never persisted with identity.
type FactorScore struct {
	Score   float64  `json:"score"`
	Details []string `json:"details,omitempty"`
}

// IsZero reports whether the factor contributed nothing
func (f FactorScore) IsZero() bool {
	return f.Score == 0
}

// PredictionResult is the aggregator's output for a single matchup.
// Spread is home-favoring: positive means the model favors the home team.
type PredictionResult struct {
	ID             uuid.UUID          `db:"id" json:"id"`
	GameID         *uuid.UUID         `db:"game_id" json:"game_id,omitempty"`
	HomeTeam       string             `db:"home_team" json:"home_team"`
	AwayTeam       string             `db:"away_team" json:"away_team"`
	Spread         float64            `db:"spread" json:"spread"`
	Confidence     Confidence         `db:"confidence" json:"confidence"`
	KeyFactors     []string           `db:"-" json:"key_factors"`
	RecommendedBet *string            `db:"recommended_bet" json:"recommended_bet,omitempty"`
	MarketLine     *float64           `db:"market_line" json:"market_line,omitempty"`
	Edge           *float64           `db:"edge" json:"edge,omitempty"`
	Breakdown      map[string]float64 `db:"-" json:"factor_breakdown"`
	TotalLean      *float64           `db:"total_lean" json:"total_lean,omitempty"`
	TotalPick      *string            `db:"total_pick" json:"total_pick,omitempty"`
	PredictedAt    time.Time          `db:"predicted_at" json:"predicted_at"`
}

// FavorsHome reports whether the model favors the home side
func (p *PredictionResult) FavorsHome() bool {
	return p.Spread > 0
}

// HasPlay reports whether the model emitted an actionable recommendation
func (p *PredictionResult) HasPlay() bool {
	return p.RecommendedBet != nil
}

// RosterSignals carries the pre-computed roster-analytics adjustments for a
// matchup. The core clamps and sums these; it never derives them itself.
type RosterSignals struct {
	PlayerEfficiencyAdj float64  `json:"player_efficiency_adj"`
	TeamEfficiencyAdj   float64  `json:"team_efficiency_adj"`
	MomentumAdj         float64  `json:"momentum_adj"`
	Confidence          float64  `json:"confidence" validate:"gte=0,lte=1"`
	KeyInsights         []string `json:"key_insights"`
}

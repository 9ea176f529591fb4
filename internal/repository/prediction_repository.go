package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresPredictionRepository implements PredictionRepository for PostgreSQL
type PostgresPredictionRepository struct {
	db *database.DB
}

// NewPostgresPredictionRepository creates a new prediction repository
func NewPostgresPredictionRepository(db *database.DB) PredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// Insert persists a prediction result. The factor breakdown and key factors
// are stored as JSON documents.
func (r *PostgresPredictionRepository) Insert(ctx context.Context, prediction *models.PredictionResult) error {
	breakdown, err := json.Marshal(prediction.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal factor breakdown: %w", err)
	}
	keyFactors, err := json.Marshal(prediction.KeyFactors)
	if err != nil {
		return fmt.Errorf("failed to marshal key factors: %w", err)
	}

	query := `
		INSERT INTO predictions (id, game_id, home_team, away_team, spread, confidence,
			key_factors, recommended_bet, market_line, edge, factor_breakdown,
			total_lean, total_pick, predicted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		prediction.ID, prediction.GameID, prediction.HomeTeam, prediction.AwayTeam,
		prediction.Spread, prediction.Confidence, keyFactors, prediction.RecommendedBet,
		prediction.MarketLine, prediction.Edge, breakdown,
		prediction.TotalLean, prediction.TotalPick, prediction.PredictedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	return nil
}

// GetByGameID retrieves predictions recorded for a game
func (r *PostgresPredictionRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.PredictionResult, error) {
	query := `
		SELECT id, game_id, home_team, away_team, spread, confidence,
			key_factors, recommended_bet, market_line, edge, factor_breakdown,
			total_lean, total_pick, predicted_at
		FROM predictions
		WHERE game_id = $1
		ORDER BY predicted_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*models.PredictionResult
	for rows.Next() {
		p := &models.PredictionResult{}
		var keyFactors, breakdown []byte
		err := rows.Scan(
			&p.ID, &p.GameID, &p.HomeTeam, &p.AwayTeam, &p.Spread, &p.Confidence,
			&keyFactors, &p.RecommendedBet, &p.MarketLine, &p.Edge, &breakdown,
			&p.TotalLean, &p.TotalPick, &p.PredictedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if err := json.Unmarshal(keyFactors, &p.KeyFactors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal key factors: %w", err)
		}
		if err := json.Unmarshal(breakdown, &p.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factor breakdown: %w", err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

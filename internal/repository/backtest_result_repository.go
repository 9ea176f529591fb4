package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresBacktestResultRepository implements BacktestResultRepository for PostgreSQL
type PostgresBacktestResultRepository struct {
	db *database.DB
}

// NewPostgresBacktestResultRepository creates a new backtest result repository
func NewPostgresBacktestResultRepository(db *database.DB) BacktestResultRepository {
	return &PostgresBacktestResultRepository{db: db}
}

// Insert persists a harness run
func (r *PostgresBacktestResultRepository) Insert(ctx context.Context, result *models.BacktestResult) error {
	query := `
		INSERT INTO backtest_results (id, run_date, games_tested, skipped_games, model_wins,
			ats_accuracy, beats_break_even, beats_baseline, beats_target, status, message, weights_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		result.ID, result.RunDate, result.GamesTested, result.SkippedGames, result.ModelWins,
		result.ATSAccuracy, result.BeatsBreakEven, result.BeatsBaseline, result.BeatsTarget,
		result.Status, result.Message, result.WeightsVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to insert backtest result: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent harness runs
func (r *PostgresBacktestResultRepository) GetLatest(ctx context.Context, limit int) ([]*models.BacktestResult, error) {
	query := `
		SELECT id, run_date, games_tested, skipped_games, model_wins,
			ats_accuracy, beats_break_even, beats_baseline, beats_target, status, message, weights_version
		FROM backtest_results
		ORDER BY run_date DESC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query backtest results: %w", err)
	}
	defer rows.Close()

	var results []*models.BacktestResult
	for rows.Next() {
		result := &models.BacktestResult{}
		err := rows.Scan(
			&result.ID, &result.RunDate, &result.GamesTested, &result.SkippedGames, &result.ModelWins,
			&result.ATSAccuracy, &result.BeatsBreakEven, &result.BeatsBaseline, &result.BeatsTarget,
			&result.Status, &result.Message, &result.WeightsVersion,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan backtest result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

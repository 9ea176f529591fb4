package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const (
	errScanGame = "failed to scan game: %w"

	gameColumns = `
		id, home_team_id, away_team_id, season, week, start_date, completed,
		home_score, away_score, spread, over_under,
		temperature, wind_speed, precipitation, is_dome, weather_condition,
		is_neutral_site, provider_id, created_at, updated_at`
)

// PostgresGameRepository implements GameRepository for PostgreSQL
type PostgresGameRepository struct {
	db *database.DB
}

// NewPostgresGameRepository creates a new game repository
func NewPostgresGameRepository(db *database.DB) GameRepository {
	return &PostgresGameRepository{db: db}
}

// Create inserts a new game
func (r *PostgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.GetPool().Exec(ctx, query, gameArgs(game)...)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

// GetByID retrieves a game by ID
func (r *PostgresGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

	game := &models.Game{}
	err := scanGame(r.db.GetPool().QueryRow(ctx, query, id), game)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetCompletedBySeasons retrieves completed games for the given seasons in
// chronological order, which the ratings pass depends on.
func (r *PostgresGameRepository) GetCompletedBySeasons(ctx context.Context, seasons []int) ([]*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE completed = true AND season = ANY($1)
		ORDER BY season ASC, week ASC, start_date ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// GetUpcoming retrieves games that have not yet kicked off
func (r *PostgresGameRepository) GetUpcoming(ctx context.Context, limit int) ([]*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE completed = false AND start_date > NOW()
		ORDER BY start_date ASC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// Upsert inserts or updates a game keyed on its provider ID. Market lines
// coalesce so a re-sync whose line fetch failed never wipes a stored line.
func (r *PostgresGameRepository) Upsert(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (provider_id) DO UPDATE SET
			completed = EXCLUDED.completed,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			spread = COALESCE(EXCLUDED.spread, games.spread),
			over_under = COALESCE(EXCLUDED.over_under, games.over_under),
			temperature = EXCLUDED.temperature,
			wind_speed = EXCLUDED.wind_speed,
			precipitation = EXCLUDED.precipitation,
			is_dome = EXCLUDED.is_dome,
			weather_condition = EXCLUDED.weather_condition,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.GetPool().Exec(ctx, query, gameArgs(game)...)
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	return nil
}

func gameArgs(game *models.Game) []interface{} {
	return []interface{}{
		game.ID, game.HomeTeamID, game.AwayTeamID, game.Season, game.Week,
		game.StartDate, game.Completed, game.HomeScore, game.AwayScore,
		game.Spread, game.OverUnder,
		game.Weather.Temperature, game.Weather.WindSpeed, game.Weather.Precipitation,
		game.Weather.IsDome, game.Weather.Condition,
		game.IsNeutralSite, game.ProviderID, game.CreatedAt, game.UpdatedAt,
	}
}

func scanGame(row pgx.Row, game *models.Game) error {
	return row.Scan(
		&game.ID, &game.HomeTeamID, &game.AwayTeamID, &game.Season, &game.Week,
		&game.StartDate, &game.Completed, &game.HomeScore, &game.AwayScore,
		&game.Spread, &game.OverUnder,
		&game.Weather.Temperature, &game.Weather.WindSpeed, &game.Weather.Precipitation,
		&game.Weather.IsDome, &game.Weather.Condition,
		&game.IsNeutralSite, &game.ProviderID, &game.CreatedAt, &game.UpdatedAt,
	)
}

func collectGames(rows pgx.Rows) ([]*models.Game, error) {
	var games []*models.Game
	for rows.Next() {
		game := &models.Game{}
		if err := scanGame(rows, game); err != nil {
			return nil, fmt.Errorf(errScanGame, err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

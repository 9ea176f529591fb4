package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const errScanTeam = "failed to scan team: %w"

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	db *database.DB
}

// NewPostgresTeamRepository creates a new team repository
func NewPostgresTeamRepository(db *database.DB) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

// Create inserts a new team
func (r *PostgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, conference, rating, wins, losses, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		team.ID, team.Name, team.Conference, team.Rating, team.Wins, team.Losses,
		team.ProviderID, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

// GetByID retrieves a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `
		SELECT id, name, conference, rating, wins, losses, provider_id, created_at, updated_at
		FROM teams WHERE id = $1
	`

	team := &models.Team{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.Conference, &team.Rating, &team.Wins, &team.Losses,
		&team.ProviderID, &team.CreatedAt, &team.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return team, nil
}

// GetByName retrieves a team by its display name
func (r *PostgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	if name == "" {
		return nil, models.ErrTeamNameRequired
	}

	query := `
		SELECT id, name, conference, rating, wins, losses, provider_id, created_at, updated_at
		FROM teams WHERE name = $1
	`

	team := &models.Team{}
	err := r.db.GetPool().QueryRow(ctx, query, name).Scan(
		&team.ID, &team.Name, &team.Conference, &team.Rating, &team.Wins, &team.Losses,
		&team.ProviderID, &team.CreatedAt, &team.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}

	return team, nil
}

// GetAll retrieves every team
func (r *PostgresTeamRepository) GetAll(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, conference, rating, wins, losses, provider_id, created_at, updated_at
		FROM teams ORDER BY name
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team := &models.Team{}
		err := rows.Scan(
			&team.ID, &team.Name, &team.Conference, &team.Rating, &team.Wins, &team.Losses,
			&team.ProviderID, &team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanTeam, err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// Upsert inserts or updates a team keyed on its provider ID
func (r *PostgresTeamRepository) Upsert(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, conference, rating, wins, losses, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (provider_id) DO UPDATE SET
			name = EXCLUDED.name,
			conference = EXCLUDED.conference,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		team.ID, team.Name, team.Conference, team.Rating, team.Wins, team.Losses,
		team.ProviderID, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team: %w", err)
	}

	return nil
}

// UpdateRating persists the output of a ratings pass: the strength rating
// and the season record it replayed.
func (r *PostgresTeamRepository) UpdateRating(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET rating = $2, wins = $3, losses = $4, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.GetPool().Exec(ctx, query, team.ID, team.Rating, team.Wins, team.Losses)
	if err != nil {
		return fmt.Errorf("failed to update team rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

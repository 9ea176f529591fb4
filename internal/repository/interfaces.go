package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetAll(ctx context.Context) ([]*models.Team, error)
	Upsert(ctx context.Context, team *models.Team) error
	UpdateRating(ctx context.Context, team *models.Team) error
}

// GameRepository defines the interface for game data access
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	GetCompletedBySeasons(ctx context.Context, seasons []int) ([]*models.Game, error)
	GetUpcoming(ctx context.Context, limit int) ([]*models.Game, error)
	Upsert(ctx context.Context, game *models.Game) error
}

// PredictionRepository defines the interface for persisted predictions
type PredictionRepository interface {
	Insert(ctx context.Context, prediction *models.PredictionResult) error
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.PredictionResult, error)
}

// BacktestResultRepository defines the interface for persisted harness runs
type BacktestResultRepository interface {
	Insert(ctx context.Context, result *models.BacktestResult) error
	GetLatest(ctx context.Context, limit int) ([]*models.BacktestResult, error)
}

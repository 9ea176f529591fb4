package models

import (
	"time"

	"github.com/google/uuid"
)

// InitialRating is the strength rating assigned to every team before any
// completed game has been processed.
const InitialRating = 1500.0

// Team represents a college football program tracked by the system
type Team struct {
	ID         uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Name       string    `db:"name" json:"name" validate:"required"`
	Conference string    `db:"conference" json:"conference"`
	Rating     float64   `db:"rating" json:"rating"`
	Wins       int       `db:"wins" json:"wins" validate:"gte=0"`
	Losses     int       `db:"losses" json:"losses" validate:"gte=0"`
	ProviderID int       `db:"provider_id" json:"provider_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// NewTeam creates a team seeded at the initial strength rating
func NewTeam(name, conference string) *Team {
	now := time.Now().UTC()
	return &Team{
		ID:         uuid.New(),
		Name:       name,
		Conference: conference,
		Rating:     InitialRating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WinPercentage returns the season win rate, 0 when no games played
func (t *Team) WinPercentage() float64 {
	games := t.Wins + t.Losses
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}

// RecordResult updates the season win/loss counters
func (t *Team) RecordResult(won bool) {
	if won {
		t.Wins++
	} else {
		t.Losses++
	}
	t.UpdatedAt = time.Now().UTC()
}

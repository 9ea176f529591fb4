// Package ingestion pulls teams, games, and betting lines from the data
// provider and persists them through the repository layer.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/datasource"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// Summary accumulates counts for a single ingestion run
type Summary struct {
	Season        int
	TeamsUpserted int
	GamesUpserted int
	LinesMatched  int
	Skipped       int
	Errors        int
	Duration      time.Duration
}

// String renders the summary for log output
func (s *Summary) String() string {
	return fmt.Sprintf("season=%d teams=%d games=%d lines=%d skipped=%d errors=%d duration=%s",
		s.Season, s.TeamsUpserted, s.GamesUpserted, s.LinesMatched, s.Skipped, s.Errors, s.Duration)
}

// Service handles the data ingestion workflow
type Service struct {
	source datasource.GameSource
	teams  repository.TeamRepository
	games  repository.GameRepository
	logger *logrus.Logger
}

// NewService creates a new ingestion service
func NewService(source datasource.GameSource, teams repository.TeamRepository, games repository.GameRepository, logger *logrus.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("data source is required")
	}
	if teams == nil || games == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{source: source, teams: teams, games: games, logger: logger}, nil
}

// SyncSeason fetches and persists one full season of teams, games, and lines
func (s *Service) SyncSeason(ctx context.Context, season int) (*Summary, error) {
	start := time.Now()
	summary := &Summary{Season: season}

	s.logger.WithFields(logrus.Fields{
		"season": season,
		"source": s.source.Name(),
	}).Info("Starting season sync")

	teamsByName, err := s.syncTeams(ctx, season, summary)
	if err != nil {
		return summary, err
	}

	rawGames, err := s.source.FetchGames(ctx, season, nil)
	if err != nil {
		summary.Errors++
		return summary, fmt.Errorf("failed to fetch games: %w", err)
	}

	lines, err := s.fetchSeasonLines(ctx, season, rawGames)
	if err != nil {
		// Lines are an enrichment. Games without a market spread are still
		// usable for the ratings pass, so keep going.
		s.logger.WithError(err).Warn("Failed to fetch betting lines, ingesting games without spreads")
	}

	for i := range rawGames {
		game, err := s.convertGame(&rawGames[i], teamsByName, lines)
		if err != nil {
			summary.Skipped++
			s.logger.WithFields(logrus.Fields{
				"game_id": rawGames[i].SourceID,
				"error":   err,
			}).Debug("Skipping game")
			continue
		}

		if err := s.games.Upsert(ctx, game); err != nil {
			summary.Errors++
			s.logger.WithError(err).WithField("game_id", rawGames[i].SourceID).Error("Failed to upsert game")
			continue
		}
		if game.Spread != nil {
			summary.LinesMatched++
		}
		summary.GamesUpserted++
		metrics.GamesIngestedTotal.Inc()
	}

	summary.Duration = time.Since(start)
	s.logger.WithField("summary", summary.String()).Info("Season sync complete")
	return summary, nil
}

// syncTeams upserts the season's team list and returns a name index
func (s *Service) syncTeams(ctx context.Context, season int, summary *Summary) (map[string]*models.Team, error) {
	rawTeams, err := s.source.FetchTeams(ctx, season)
	if err != nil {
		summary.Errors++
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	teamsByName := make(map[string]*models.Team, len(rawTeams))
	for _, rt := range rawTeams {
		conference := ""
		if rt.Conference != nil {
			conference = *rt.Conference
		}

		team, err := s.teams.GetByName(ctx, rt.School)
		if errors.Is(err, models.ErrNotFound) {
			team = models.NewTeam(rt.School, conference)
		} else if err != nil {
			summary.Errors++
			s.logger.WithError(err).WithField("team", rt.School).Error("Failed to look up team")
			continue
		} else {
			team.Conference = conference
		}

		if id, err := strconv.Atoi(rt.SourceID); err == nil {
			team.ProviderID = id
		}

		if err := s.teams.Upsert(ctx, team); err != nil {
			summary.Errors++
			s.logger.WithError(err).WithField("team", rt.School).Error("Failed to upsert team")
			continue
		}
		teamsByName[team.Name] = team
		summary.TeamsUpserted++
	}
	return teamsByName, nil
}

// fetchSeasonLines collects consensus spreads keyed by provider game ID for
// every week that appears in the fetched games
func (s *Service) fetchSeasonLines(ctx context.Context, season int, games []datasource.GameData) (map[string]datasource.LineData, error) {
	weeks := make(map[int]bool)
	for i := range games {
		weeks[games[i].Week] = true
	}

	byGame := make(map[string]datasource.LineData)
	for week := range weeks {
		lines, err := s.source.FetchLines(ctx, season, week)
		if err != nil {
			return byGame, fmt.Errorf("week %d: %w", week, err)
		}
		for _, line := range lines {
			// First provider with a spread wins; later books only fill gaps
			if existing, ok := byGame[line.GameSourceID]; ok && existing.Spread != nil {
				continue
			}
			byGame[line.GameSourceID] = line
		}
	}
	return byGame, nil
}

// convertGame maps provider game data onto the storage model
func (s *Service) convertGame(raw *datasource.GameData, teamsByName map[string]*models.Team, lines map[string]datasource.LineData) (*models.Game, error) {
	home, ok := teamsByName[raw.HomeTeam]
	if !ok {
		return nil, fmt.Errorf("unknown home team %q", raw.HomeTeam)
	}
	away, ok := teamsByName[raw.AwayTeam]
	if !ok {
		return nil, fmt.Errorf("unknown away team %q", raw.AwayTeam)
	}

	now := time.Now().UTC()
	game := &models.Game{
		ID:            uuid.New(),
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		Season:        raw.Season,
		Week:          raw.Week,
		StartDate:     raw.StartDate,
		Completed:     raw.Completed,
		HomeScore:     raw.HomeScore,
		AwayScore:     raw.AwayScore,
		IsNeutralSite: raw.NeutralSite,
		Weather: models.WeatherConditions{
			Temperature:   raw.Temperature,
			WindSpeed:     raw.WindSpeed,
			Precipitation: raw.Precipitation,
			IsDome:        raw.Dome,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if id, err := strconv.Atoi(raw.SourceID); err == nil {
		game.ProviderID = id
	} else {
		return nil, fmt.Errorf("invalid provider game ID %q", raw.SourceID)
	}

	if line, ok := lines[raw.SourceID]; ok {
		game.Spread = decimalPtr(line.Spread)
		game.OverUnder = decimalPtr(line.OverUnder)
	}

	return game, nil
}

func decimalPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

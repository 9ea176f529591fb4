// Package main provides a CLI for inspecting team strength ratings and
// recent backtest results.
package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/ratings"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	topN       int
	logger     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	ratingsCmd.Flags().IntVarP(&topN, "top", "n", 25, "Number of teams to display")
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(resultsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "elo-report",
	Short: "Inspect team strength ratings and backtest history",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Display the current strength ratings ranking",
	Run: func(cmd *cobra.Command, args []string) {
		displayRatings()
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Display recent backtest results",
	Run: func(cmd *cobra.Command, args []string) {
		displayResults()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	logger = logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	return nil
}

func displayRatings() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	teams, err := repos.Team.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load teams: %v", err)
	}
	teamsByID := make(map[uuid.UUID]*models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	games, err := repos.Game.GetCompletedBySeasons(ctx, cfg.Backtest.Seasons)
	if err != nil {
		log.Fatalf("Failed to load games: %v", err)
	}

	snapshot := ratings.BuildSnapshotWithTeams(games, teamsByID)

	type ranked struct {
		team   *models.Team
		rating float64
	}
	ranking := make([]ranked, 0, len(teams))
	for id, rating := range snapshot.Ratings() {
		if team, ok := teamsByID[id]; ok {
			ranking = append(ranking, ranked{team: team, rating: rating})
		}
	}
	sort.Slice(ranking, func(i, j int) bool { return ranking[i].rating > ranking[j].rating })

	fmt.Printf("\nStrength Ratings (%d games processed, seasons %v)\n\n", snapshot.GamesProcessed(), cfg.Backtest.Seasons)
	fmt.Printf("%-4s %-28s %-16s %8s %8s %6s\n", "#", "Team", "Conference", "Rating", "Record", "Win%")
	for i, r := range ranking {
		if i >= topN {
			break
		}
		fmt.Printf("%-4d %-28s %-16s %8.1f %5d-%-2d %5.1f%%\n",
			i+1, r.team.Name, r.team.Conference, r.rating,
			r.team.Wins, r.team.Losses, r.team.WinPercentage()*100)
	}
	fmt.Println()
}

func displayResults() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := repos.BacktestResult.GetLatest(ctx, 10)
	if err != nil {
		log.Fatalf("Failed to load backtest results: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("No backtest results stored")
		return
	}

	fmt.Printf("\nRecent Backtest Results\n\n")
	fmt.Printf("%-10s %-14s %8s %8s %10s\n", "Status", "Weights", "Games", "Wins", "ATS")
	for _, r := range results {
		fmt.Printf("%-10s %-14s %8d %8d %9.1f%%\n", r.Status, r.WeightsVersion, r.GamesTested, r.ModelWins, r.ATSAccuracy*100)
	}
	fmt.Println()
}

package backtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// GenerateConsoleReport formats a backtest result for terminal output
func GenerateConsoleReport(result *models.BacktestResult) string {
	var builder strings.Builder
	builder.WriteString("Spread Model Validation Report\n")
	builder.WriteString("==============================\n")
	builder.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	builder.WriteString(fmt.Sprintf("Weights: %s\n", result.WeightsVersion))
	builder.WriteString(fmt.Sprintf("Games Tested: %d (skipped %d)\n", result.GamesTested, result.SkippedGames))
	builder.WriteString(fmt.Sprintf("ATS Record: %d-%d (%.1f%%)\n",
		result.ModelWins, result.GamesTested-result.ModelWins, result.ATSAccuracy*100))
	builder.WriteString(fmt.Sprintf("Break-even %.1f%%: %s\n", BreakEvenAccuracy*100, checkmark(result.BeatsBreakEven)))
	builder.WriteString(fmt.Sprintf("Baseline %.1f%%: %s\n", BaselineAccuracy*100, checkmark(result.BeatsBaseline)))
	builder.WriteString(fmt.Sprintf("Target %.1f%%: %s\n", TargetAccuracy*100, checkmark(result.BeatsTarget)))
	builder.WriteString(result.Message + "\n")
	return builder.String()
}

// ExportToJSON writes the result to a JSON file for downstream tooling
func ExportToJSON(result *models.BacktestResult, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backtest result: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func checkmark(ok bool) string {
	if ok {
		return "cleared"
	}
	return "missed"
}

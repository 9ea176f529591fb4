package backtest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func sampleResult() *models.BacktestResult {
	return &models.BacktestResult{
		ID:             uuid.New(),
		GamesTested:    100,
		SkippedGames:   12,
		ModelWins:      55,
		ATSAccuracy:    0.55,
		BeatsBreakEven: true,
		BeatsBaseline:  true,
		BeatsTarget:    true,
		Status:         models.BacktestPass,
		Message:        "ATS accuracy 55.0% clears the 54.2% target over 100 games",
		WeightsVersion: "enhanced-v2",
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	report := GenerateConsoleReport(sampleResult())

	for _, want := range []string{
		"Status: PASS",
		"Weights: enhanced-v2",
		"Games Tested: 100 (skipped 12)",
		"ATS Record: 55-45 (55.0%)",
		"Break-even 52.4%: cleared",
		"Target 54.2%: cleared",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGenerateConsoleReportMarksMissedGates(t *testing.T) {
	result := sampleResult()
	result.Status = models.BacktestWarning
	result.BeatsTarget = false

	report := GenerateConsoleReport(result)
	if !strings.Contains(report, "Target 54.2%: missed") {
		t.Fatalf("missed gates must read as missed:\n%s", report)
	}
}

func TestExportToJSONCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "latest", "backtest.json")

	if err := ExportToJSON(sampleResult(), path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var decoded models.BacktestResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.GamesTested != 100 || decoded.Status != models.BacktestPass {
		t.Fatalf("round trip lost fields: %+v", decoded)
	}
}

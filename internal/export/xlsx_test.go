package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/OpenSpot/internal/model"
)

func TestExportXLSX_CreatesWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	scenario := buildTestScenario()
	result := buildTestPlacement()

	err := ExportXLSX(path, scenario, result, 400, 300)
	if err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook was not created: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Summary", "Windows", "Spaces"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("workbook is missing sheet %s", sheet)
		}
	}

	rows, err := f.GetRows("Windows")
	if err != nil {
		t.Fatalf("failed to read windows sheet: %v", err)
	}
	// header plus one row per window
	if len(rows) != len(scenario.Windows)+1 {
		t.Fatalf("windows sheet has %d rows, want %d", len(rows), len(scenario.Windows)+1)
	}
	if rows[1][1] != "Browser" {
		t.Errorf("first window label is %q, want %q", rows[1][1], "Browser")
	}

	rows, err = f.GetRows("Spaces")
	if err != nil {
		t.Fatalf("failed to read spaces sheet: %v", err)
	}
	if len(rows) != len(result.Spaces)+1 {
		t.Fatalf("spaces sheet has %d rows, want %d", len(rows), len(result.Spaces)+1)
	}

	rows, err = f.GetRows("Summary")
	if err != nil {
		t.Fatalf("failed to read summary sheet: %v", err)
	}
	if rows[0][1] != "Desk" {
		t.Errorf("summary scenario name is %q, want %q", rows[0][1], "Desk")
	}
}

func TestExportXLSX_EmptyScreen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	scenario := model.NewScenario()
	scenario.Screen = model.Rectangle{}

	err := ExportXLSX(path, scenario, model.PlacementResult{}, 400, 300)
	if err == nil {
		t.Fatal("expected error for zero-sized screen, got nil")
	}
}

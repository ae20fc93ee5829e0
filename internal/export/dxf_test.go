package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/OpenSpot/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.dxf")

	err := ExportDXF(path, buildTestScenario(), buildTestPlacement(), 400, 300)
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)

	for _, layer := range []string{layerScreen, layerWindows, layerSpaces, layerPlacement} {
		if !strings.Contains(content, layer) {
			t.Errorf("DXF output is missing layer %s", layer)
		}
	}
	if !strings.Contains(content, "LINE") {
		t.Error("DXF output contains no LINE entities")
	}
}

func TestExportDXF_EmptyScreen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	scenario := model.NewScenario()
	scenario.Screen = model.Rectangle{}

	err := ExportDXF(path, scenario, model.PlacementResult{}, 400, 300)
	if err == nil {
		t.Fatal("expected error for zero-sized screen, got nil")
	}
}

func TestExportDXF_NoWindows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.dxf")

	scenario := model.NewScenario()
	result := model.PlacementResult{
		Position: model.Point{X: 760, Y: 390},
		Fallback: true,
	}

	err := ExportDXF(path, scenario, result, 400, 300)
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}
}

package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// DXF layer names for the exported layout.
const (
	layerScreen    = "SCREEN"
	layerWindows   = "WINDOWS"
	layerSpaces    = "SPACES"
	layerPlacement = "PLACEMENT"
)

// ExportDXF writes the screen layout as a layered DXF drawing: the screen
// outline, the existing windows, the discovered open spaces and the placed
// rectangle each on their own layer. Screen coordinates grow downward while
// DXF Y grows upward, so the drawing is mirrored around the screen bottom to
// keep the visual orientation.
func ExportDXF(path string, scenario model.Scenario, result model.PlacementResult, width, height int) error {
	screen := scenario.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		return fmt.Errorf("no screen to export")
	}

	d := dxf.NewDrawing()

	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{layerScreen, color.White},
		{layerWindows, color.Cyan},
		{layerSpaces, color.Green},
		{layerPlacement, color.Red},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	if err := drawRect(d, layerScreen, screen, screen); err != nil {
		return err
	}
	for _, win := range scenario.Windows {
		if err := drawRect(d, layerWindows, win.Rect, screen); err != nil {
			return err
		}
	}
	for _, space := range result.Spaces {
		if err := drawRect(d, layerSpaces, space, screen); err != nil {
			return err
		}
	}
	if err := drawRect(d, layerPlacement, result.Rect(width, height), screen); err != nil {
		return err
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// drawRect emits the four edges of a rectangle as LINE entities on the given
// layer, flipping the Y axis around the screen bottom edge.
func drawRect(d *drawing.Drawing, layer string, r model.Rectangle, screen model.Rectangle) error {
	if err := d.ChangeLayer(layer); err != nil {
		return fmt.Errorf("failed to select layer %s: %w", layer, err)
	}

	x1 := float64(r.X - screen.X)
	x2 := float64(r.Right() - screen.X)
	y1 := float64(screen.Bottom() - r.Y)
	y2 := float64(screen.Bottom() - r.Bottom())

	lines := [][4]float64{
		{x1, y1, x2, y1},
		{x2, y1, x2, y2},
		{x2, y2, x1, y2},
		{x1, y2, x1, y1},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("failed to draw line on layer %s: %w", layer, err)
		}
	}
	return nil
}

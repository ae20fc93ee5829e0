package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// ExportXLSX writes a placement report as an Excel workbook with a summary
// sheet, a windows sheet and an open-spaces sheet.
func ExportXLSX(path string, scenario model.Scenario, result model.PlacementResult, width, height int) error {
	screen := scenario.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		return fmt.Errorf("no screen to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	mode := "open space"
	if result.Fallback {
		mode = "centered fallback"
	}
	summary := [][]interface{}{
		{"Scenario", scenario.Name},
		{"Screen", fmt.Sprintf("(%d, %d) %dx%d", screen.X, screen.Y, screen.Width, screen.Height)},
		{"Requested size", fmt.Sprintf("%dx%d", width, height)},
		{"Position", fmt.Sprintf("(%d, %d)", result.Position.X, result.Position.Y)},
		{"Mode", mode},
		{"Windows", len(scenario.Windows)},
		{"Open spaces", len(result.Spaces)},
	}
	if err := writeRows(f, "Summary", summary); err != nil {
		return err
	}

	if _, err := f.NewSheet("Windows"); err != nil {
		return fmt.Errorf("failed to create windows sheet: %w", err)
	}
	windowRows := [][]interface{}{{"ID", "Label", "X", "Y", "Width", "Height"}}
	for _, win := range scenario.Windows {
		windowRows = append(windowRows, []interface{}{
			win.ID, win.Label, win.Rect.X, win.Rect.Y, win.Rect.Width, win.Rect.Height,
		})
	}
	if err := writeRows(f, "Windows", windowRows); err != nil {
		return err
	}

	if _, err := f.NewSheet("Spaces"); err != nil {
		return fmt.Errorf("failed to create spaces sheet: %w", err)
	}
	spaceRows := [][]interface{}{{"X", "Y", "Width", "Height", "Area"}}
	for _, space := range result.Spaces {
		spaceRows = append(spaceRows, []interface{}{
			space.X, space.Y, space.Width, space.Height, space.Area(),
		})
	}
	if err := writeRows(f, "Spaces", spaceRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write XLSX file: %w", err)
	}
	return nil
}

// writeRows fills a sheet starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

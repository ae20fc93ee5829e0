package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/engine"
	"github.com/piwi3910/OpenSpot/internal/export"
	"github.com/piwi3910/OpenSpot/internal/model"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		scenarioPath string
		outputPath   string
		width        int
		height       int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a placement report",
		Long: `Run a placement and export the layout as a report.

The output format is chosen by the file extension of --output: .pdf for a
visual report with a QR code, .dxf for a layered CAD drawing, .xlsx for a
spreadsheet.

Examples:
  openspot export --scenario desk.json --width 400 --height 300 -o layout.pdf
  openspot export --scenario desk.json --width 400 --height 300 -o layout.dxf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}

			placer := engine.New(scenario.Settings)
			rect := model.NewRectangle(0, 0, width, height)
			result, err := placer.Place(rect, scenario.Screen, model.Rects(scenario.Windows))
			if err != nil {
				return err
			}

			switch strings.ToLower(filepath.Ext(outputPath)) {
			case ".pdf":
				err = export.ExportPDF(outputPath, scenario, result, width, height)
			case ".dxf":
				err = export.ExportDXF(outputPath, scenario, result, width, height)
			case ".xlsx":
				err = export.ExportXLSX(outputPath, scenario, result, width, height)
			default:
				return fmt.Errorf("unsupported output format %q, use .pdf, .dxf or .xlsx", filepath.Ext(outputPath))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", outputPath)
			return rememberScenario(scenarioPath)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.json", "Scenario file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (.pdf, .dxf or .xlsx)")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "Width of the window to place")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Height of the window to place")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/importer"
	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/piwi3910/OpenSpot/internal/project"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	var (
		outputPath string
		screenSpec string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import windows from a CSV or Excel file",
		Long: `Import a window list from a CSV or Excel file into a scenario.

The file needs label, x, y, width and height columns. A header row is
detected automatically; without one, the first five columns are used in
that order.

Examples:
  openspot import windows.csv -o desk.json --screen 1920x1080
  openspot import windows.xlsx -o desk.json --screen 1600x900+1920+0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			screen, err := parseGeometry(screenSpec)
			if err != nil {
				return err
			}

			var result importer.ImportResult
			switch strings.ToLower(filepath.Ext(inputPath)) {
			case ".csv":
				result = importer.ImportCSV(inputPath)
			case ".xlsx":
				result = importer.ImportExcel(inputPath)
			default:
				return fmt.Errorf("unsupported input format %q, use .csv or .xlsx", filepath.Ext(inputPath))
			}

			out := cmd.OutOrStdout()
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", warning)
			}
			for _, impErr := range result.Errors {
				fmt.Fprintf(out, "Error: %s\n", impErr)
			}
			if len(result.Windows) == 0 {
				return fmt.Errorf("no windows imported from %s", inputPath)
			}

			scenario := model.NewScenario()
			scenario.Screen = screen
			scenario.Windows = result.Windows
			GlobalConfig.App.ApplyToSettings(&scenario.Settings)
			if name != "" {
				scenario.Name = name
			} else {
				base := filepath.Base(inputPath)
				scenario.Name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			if err := project.SaveScenario(outputPath, scenario); err != nil {
				return fmt.Errorf("failed to save scenario: %w", err)
			}

			fmt.Fprintf(out, "Imported %d windows into %s\n", len(result.Windows), outputPath)
			return rememberScenario(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "scenario.json", "Scenario file to write")
	cmd.Flags().StringVar(&screenSpec, "screen", "1920x1080", "Screen geometry as WxH or WxH+X+Y")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name (default: input file name)")

	return cmd
}

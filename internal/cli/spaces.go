package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/engine"
	"github.com/piwi3910/OpenSpot/internal/model"
)

// NewSpacesCommand creates the spaces command
func NewSpacesCommand() *cobra.Command {
	var (
		scenarioPath string
		ratio        float64
		showGrid     bool
		outputJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "List the open spaces of a scenario",
		Long: `Discover the maximal empty rectangles of a scenario and print them.

Spaces are grown toward the given aspect ratio; pass --grid to also print the
occupancy grid the search ran on, with '#' for occupied cells and '.' for
free ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if ratio <= 0 {
				return fmt.Errorf("ratio must be positive, got %g", ratio)
			}

			windows := model.Rects(scenario.Windows)
			spaces := engine.FindOpenSpaces(scenario.Screen, windows, ratio)

			if outputJSON {
				data, err := json.MarshalIndent(spaces, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode spaces: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d open spaces on %dx%d screen:\n", len(spaces), scenario.Screen.Width, scenario.Screen.Height)
			for i, space := range spaces {
				fmt.Fprintf(out, "%3d. (%d, %d) %dx%d, area %d\n", i+1, space.X, space.Y, space.Width, space.Height, space.Area())
			}

			if showGrid {
				grid := engine.BuildGrid(scenario.Screen, windows)
				fmt.Fprintln(out)
				fmt.Fprint(out, renderOccupancy(grid.Occupancy()))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.json", "Scenario file")
	cmd.Flags().Float64Var(&ratio, "ratio", 1.0, "Aspect ratio to grow spaces toward")
	cmd.Flags().BoolVar(&showGrid, "grid", false, "Print the occupancy grid")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print the spaces as JSON")

	return cmd
}

// renderOccupancy formats an occupancy map with one character per cell.
func renderOccupancy(occupied [][]bool) string {
	var sb strings.Builder
	for _, row := range occupied {
		for _, cell := range row {
			if cell {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

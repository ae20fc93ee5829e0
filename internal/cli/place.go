package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/engine"
	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/piwi3910/OpenSpot/internal/project"
)

// NewPlaceCommand creates the place command
func NewPlaceCommand() *cobra.Command {
	var (
		scenarioPath string
		width        int
		height       int
		strategy     string
		thorough     bool
		limitGrowth  bool
		outputJSON   bool
		save         bool
		label        string
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Find a position for a new window",
		Long: `Find the best position for a new window of the given size.

The scenario file describes the screen and the windows already on it. The
chosen position is printed as "X Y"; pass --json for the full result with
the discovered spaces and the occupancy grid.

Examples:
  # Place a 400x300 window in a scenario
  openspot place --scenario desk.json --width 400 --height 300

  # Use the alternating growth strategy and keep the result
  openspot place --scenario desk.json --width 400 --height 300 \
    --strategy alternate --save --label "Mail"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}

			settings := scenario.Settings
			if cmd.Flags().Changed("strategy") {
				settings.Strategy = model.Strategy(strategy)
			}
			if cmd.Flags().Changed("thorough") {
				settings.Thorough = thorough
			}
			if cmd.Flags().Changed("limit-growth") {
				settings.LimitGrowth = limitGrowth
			}
			if settings.Strategy != model.StrategyAspect && settings.Strategy != model.StrategyAlternate {
				return fmt.Errorf("unknown strategy %q", settings.Strategy)
			}

			placer := engine.New(settings)
			rect := model.NewRectangle(0, 0, width, height)
			result, err := placer.Place(rect, scenario.Screen, model.Rects(scenario.Windows))
			if err != nil {
				return err
			}

			log.Printf("placed %dx%d at (%d, %d), fallback=%v, %d spaces",
				width, height, result.Position.X, result.Position.Y, result.Fallback, len(result.Spaces))

			if outputJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", result.Position.X, result.Position.Y)
				if result.Fallback {
					fmt.Fprintln(cmd.OutOrStdout(), "(centered fallback, no usable open space)")
				}
			}

			if save {
				if label == "" {
					label = fmt.Sprintf("Window %d", len(scenario.Windows)+1)
				}
				scenario.Windows = append(scenario.Windows, model.NewWindow(label, result.Rect(width, height)))
				if err := project.SaveScenario(scenarioPath, scenario); err != nil {
					return fmt.Errorf("failed to save scenario: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", label, scenarioPath)
			}

			return rememberScenario(scenarioPath)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.json", "Scenario file")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "Width of the window to place")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Height of the window to place")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Growth strategy: aspect or alternate")
	cmd.Flags().BoolVar(&thorough, "thorough", false, "Run extra single-direction passes per origin")
	cmd.Flags().BoolVar(&limitGrowth, "limit-growth", false, "Stop growing a space once it spans the requested size")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print the full placement result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Append the placed window to the scenario file")
	cmd.Flags().StringVar(&label, "label", "", "Label for the saved window")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// rememberScenario records a scenario path in the application config.
func rememberScenario(path string) error {
	GlobalConfig.App.AddRecentScenario(path)
	if err := project.SaveAppConfig(GlobalConfig.ConfigPath, GlobalConfig.App); err != nil {
		log.Printf("failed to save application config: %v", err)
	}
	return nil
}

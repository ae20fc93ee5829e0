package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/piwi3910/OpenSpot/internal/project"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		screenSpec string
		name       string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Create a new scenario file",
		Long: `Create an empty scenario file with the given screen geometry.

Placement settings are seeded from the application config.

Examples:
  openspot init desk.json --screen 1920x1080 --name "Desk"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
			}

			screen, err := parseGeometry(screenSpec)
			if err != nil {
				return err
			}

			scenario := model.NewScenario()
			scenario.Screen = screen
			GlobalConfig.App.ApplyToSettings(&scenario.Settings)
			if name != "" {
				scenario.Name = name
			}

			if err := project.SaveScenario(path, scenario); err != nil {
				return fmt.Errorf("failed to save scenario: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return rememberScenario(path)
		},
	}

	cmd.Flags().StringVar(&screenSpec, "screen", "1920x1080", "Screen geometry as WxH or WxH+X+Y")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

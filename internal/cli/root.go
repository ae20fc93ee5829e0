// Package cli implements the openspot command line interface.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/piwi3910/OpenSpot/internal/project"
)

const (
	// Version is the current version of OpenSpot
	Version = "1.0.0"
)

// Config holds the global configuration for the OpenSpot CLI
type Config struct {
	ConfigPath string
	Debug      bool
	App        model.AppConfig
}

// GlobalConfig is the shared configuration instance
var GlobalConfig = &Config{}

// NewRootCommand creates the root cobra command for OpenSpot
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openspot",
		Short: "OpenSpot - Open space discovery and window placement",
		Long: `OpenSpot finds the empty regions of a screen layout and picks the best
position for a new window. Scenarios describing a screen and its windows are
stored as JSON files and can be imported from CSV or Excel and exported as
PDF, DXF or XLSX reports.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			if GlobalConfig.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}

			return nil
		},
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVar(&GlobalConfig.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&GlobalConfig.ConfigPath, "config", "", "Application config file (default: ~/.openspot/config.json)")

	// Add subcommands
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewPlaceCommand())
	cmd.AddCommand(NewSpacesCommand())
	cmd.AddCommand(NewImportCommand())
	cmd.AddCommand(NewExportCommand())

	return cmd
}

// initConfig loads the application config, falling back to defaults when the
// file does not exist yet.
func initConfig() error {
	if envPath := os.Getenv("OPENSPOT_CONFIG"); envPath != "" {
		GlobalConfig.ConfigPath = envPath
	} else if GlobalConfig.ConfigPath == "" {
		GlobalConfig.ConfigPath = project.DefaultConfigPath()
	}

	app, err := project.LoadAppConfig(GlobalConfig.ConfigPath)
	if err != nil {
		return err
	}
	GlobalConfig.App = app
	return nil
}

// loadScenario reads a scenario file and applies the application defaults to
// any settings the file leaves unset.
func loadScenario(path string) (model.Scenario, error) {
	sc, err := project.LoadScenario(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Scenario{}, fmt.Errorf("scenario not found: %s", path)
		}
		return model.Scenario{}, err
	}
	return sc, nil
}

// parseGeometry parses a WxH or WxH+X+Y geometry string into a rectangle.
func parseGeometry(s string) (model.Rectangle, error) {
	spec := s
	var originX, originY int

	if idx := strings.IndexAny(spec, "+"); idx >= 0 {
		origin := spec[idx+1:]
		spec = spec[:idx]
		parts := strings.SplitN(origin, "+", 2)
		if len(parts) != 2 {
			return model.Rectangle{}, fmt.Errorf("invalid geometry %q, expected WxH or WxH+X+Y", s)
		}
		var err error
		if originX, err = strconv.Atoi(parts[0]); err != nil {
			return model.Rectangle{}, fmt.Errorf("invalid geometry %q: %w", s, err)
		}
		if originY, err = strconv.Atoi(parts[1]); err != nil {
			return model.Rectangle{}, fmt.Errorf("invalid geometry %q: %w", s, err)
		}
	}

	dims := strings.SplitN(spec, "x", 2)
	if len(dims) != 2 {
		return model.Rectangle{}, fmt.Errorf("invalid geometry %q, expected WxH or WxH+X+Y", s)
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return model.Rectangle{}, fmt.Errorf("invalid geometry %q: %w", s, err)
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return model.Rectangle{}, fmt.Errorf("invalid geometry %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return model.Rectangle{}, fmt.Errorf("invalid geometry %q, dimensions must be positive", s)
	}

	return model.NewRectangle(originX, originY, width, height), nil
}

// Package project handles persistence of scenarios and application
// configuration as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// SaveScenario writes the scenario to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveScenario(path string, sc model.Scenario) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScenario reads a scenario from the specified JSON file.
func LoadScenario(path string) (model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, err
	}
	var sc model.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return model.Scenario{}, fmt.Errorf("invalid scenario file %s: %w", path, err)
	}
	// Older files may omit settings entirely; fill in the defaults.
	if sc.Settings == (model.PlacerSettings{}) {
		sc.Settings = model.DefaultSettings()
	}
	if sc.Windows == nil {
		sc.Windows = []model.Window{}
	}
	return sc, nil
}

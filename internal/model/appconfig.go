package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default placer settings applied to new scenarios
	DefaultStrategy        Strategy `json:"default_strategy"`
	DefaultMaxWindows      int      `json:"default_max_windows"`
	DefaultMaxSizeFraction float64  `json:"default_max_size_fraction"`
	DefaultThorough        bool     `json:"default_thorough"`

	// Application preferences
	RecentScenarios []string `json:"recent_scenarios"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultStrategy:        defaults.Strategy,
		DefaultMaxWindows:      defaults.MaxWindows,
		DefaultMaxSizeFraction: defaults.MaxSizeFraction,
		DefaultThorough:        defaults.Thorough,
		RecentScenarios:        []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// PlacerSettings struct. Used when creating a new scenario so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PlacerSettings) {
	s.Strategy = c.DefaultStrategy
	s.MaxWindows = c.DefaultMaxWindows
	s.MaxSizeFraction = c.DefaultMaxSizeFraction
	s.Thorough = c.DefaultThorough
}

// AddRecentScenario prepends path to the recent list, dropping duplicates
// and capping the list at ten entries.
func (c *AppConfig) AddRecentScenario(path string) {
	recent := []string{path}
	for _, p := range c.RecentScenarios {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	c.RecentScenarios = recent
}

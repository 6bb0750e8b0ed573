package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new plans
	DefaultWidth    float64 `json:"default_width"`
	DefaultLength   float64 `json:"default_length"`
	DefaultGridSize float64 `json:"default_grid_size"`

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the same values
// as DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultWidth:    defaults.Width,
		DefaultLength:   defaults.Length,
		DefaultGridSize: defaults.GridSize,
		RecentPlans:     []string{},
		Theme:           "system",
	}
}

// ApplyToSettings copies the configured defaults into a GardenSettings.
// Used when creating a new plan so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *GardenSettings) {
	s.Width = c.DefaultWidth
	s.Length = c.DefaultLength
	s.GridSize = c.DefaultGridSize
}

package preferences

import "pomodoro/internal/i18n"

// Settings defines editable user preferences. Phase durations are fixed
// and intentionally absent.
type Settings struct {
	ChimeEnabled bool
	ChimeVolume  float64
	Language     string
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		ChimeEnabled: true,
		ChimeVolume:  0.8,
		Language:     "en",
	}
}

// Normalize replaces out of range values with defaults.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.ChimeVolume < 0 || settings.ChimeVolume > 1 {
		settings.ChimeVolume = defaults.ChimeVolume
	}
	if !i18n.Supported(settings.Language) {
		settings.Language = defaults.Language
	}
	return settings
}

package driving

import "github.com/custodia-labs/bordermap/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates one setting from its string form.
	// Keys are the dotted config keys, e.g. "guard.radius".
	Set(key, value string) error

	// Keys returns every settable key.
	Keys() []string

	// Validate checks that the stored settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

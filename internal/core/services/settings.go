package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyGuardRadius   = "guard.radius"
	keyLoopPolicy    = "countries.loop_policy"
	keyExportFormats = "export.formats"
	keyExportSeed    = "export.seed"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Guard: domain.GuardSettings{
			Radius: s.getRadius(defaults.Guard.Radius),
		},
		Countries: domain.CountrySettings{
			LoopPolicy: s.getLoopPolicy(defaults.Countries.LoopPolicy),
		},
		Export: domain.ExportSettings{
			Formats: s.getFormats(defaults.Export.Formats),
			Seed:    int64(s.configStore.GetInt(keyExportSeed)),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyGuardRadius, settings.Guard.Radius); err != nil {
		return fmt.Errorf("save guard radius: %w", err)
	}
	if err := s.configStore.Set(keyLoopPolicy, settings.Countries.LoopPolicy.String()); err != nil {
		return fmt.Errorf("save loop policy: %w", err)
	}

	formats := make([]string, 0, len(settings.Export.Formats))
	for _, f := range settings.Export.Formats {
		formats = append(formats, f.String())
	}
	if err := s.configStore.Set(keyExportFormats, formats); err != nil {
		return fmt.Errorf("save export formats: %w", err)
	}
	if err := s.configStore.Set(keyExportSeed, settings.Export.Seed); err != nil {
		return fmt.Errorf("save export seed: %w", err)
	}

	return nil
}

// Set updates one setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyGuardRadius:
		r, err := strconv.ParseFloat(value, 64)
		if err != nil || r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
			return fmt.Errorf("guard radius must be a positive number, got %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Guard.Radius = r

	case keyLoopPolicy:
		p := domain.LoopPolicy(value)
		if !p.IsValid() {
			return fmt.Errorf("invalid loop policy %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Countries.LoopPolicy = p

	case keyExportFormats:
		formats, err := parseFormats(value)
		if err != nil {
			return err
		}
		settings.Export.Formats = formats

	case keyExportSeed:
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("export seed must be an integer, got %q: %w", value, domain.ErrInvalidInput)
		}
		settings.Export.Seed = seed

	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	return s.Save(settings)
}

// Keys returns every settable key.
func (s *SettingsService) Keys() []string {
	return []string{keyGuardRadius, keyLoopPolicy, keyExportFormats, keyExportSeed}
}

// Validate checks that the stored settings are usable.
// Unlike Get, it reports values that Get would silently replace.
func (s *SettingsService) Validate() error {
	if _, ok := s.configStore.Get(keyGuardRadius); ok {
		if r := s.configStore.GetFloat(keyGuardRadius); r <= 0 {
			return fmt.Errorf("guard radius must be positive: %w", domain.ErrInvalidInput)
		}
	}
	if v := s.configStore.GetString(keyLoopPolicy); v != "" && !domain.LoopPolicy(v).IsValid() {
		return fmt.Errorf("invalid loop policy %q: %w", v, domain.ErrInvalidInput)
	}
	for _, v := range s.configStore.GetStringSlice(keyExportFormats) {
		if !domain.ExportFormat(v).IsValid() {
			return fmt.Errorf("invalid export format %q: %w", v, domain.ErrInvalidInput)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// parseFormats reads a comma-separated format list. An empty value
// disables exports.
func parseFormats(value string) ([]domain.ExportFormat, error) {
	formats := []domain.ExportFormat{}
	seen := make(map[domain.ExportFormat]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		f := domain.ExportFormat(part)
		if !f.IsValid() {
			return nil, fmt.Errorf("invalid export format %q: %w", part, domain.ErrInvalidInput)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getRadius(defaultVal float64) float64 {
	val := s.configStore.GetFloat(keyGuardRadius)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getLoopPolicy(defaultVal domain.LoopPolicy) domain.LoopPolicy {
	val := s.configStore.GetString(keyLoopPolicy)
	if val == "" {
		return defaultVal
	}
	policy := domain.LoopPolicy(val)
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

func (s *SettingsService) getFormats(defaultVal []domain.ExportFormat) []domain.ExportFormat {
	if _, exists := s.configStore.Get(keyExportFormats); !exists {
		return append([]domain.ExportFormat(nil), defaultVal...)
	}
	formats := []domain.ExportFormat{}
	for _, v := range s.configStore.GetStringSlice(keyExportFormats) {
		f := domain.ExportFormat(v)
		if f.IsValid() {
			formats = append(formats, f)
		}
	}
	return formats
}

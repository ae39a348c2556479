package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bordermap/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("guard.radius", int64(5))
	_ = store.Set("countries.loop_policy", "strict")
	_ = store.Set("export.formats", []any{"svg", "geojson"})
	_ = store.Set("export.seed", int64(42))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 5.0, settings.Guard.Radius)
	assert.Equal(t, domain.LoopPolicyStrict, settings.Countries.LoopPolicy)
	assert.Equal(t, []domain.ExportFormat{domain.ExportSVG, domain.ExportGeoJSON}, settings.Export.Formats)
	assert.Equal(t, int64(42), settings.Export.Seed)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("guard.radius", -1.0)
	_ = store.Set("countries.loop_policy", "loose")
	_ = store.Set("export.formats", []any{"pdf", "js"})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGuardRadius, settings.Guard.Radius)
	assert.Equal(t, domain.LoopPolicyFirst, settings.Countries.LoopPolicy)
	assert.Equal(t, []domain.ExportFormat{domain.ExportJS}, settings.Export.Formats)
}

func TestSettingsService_Get_EmptyFormatsDisableExport(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("export.formats", []string{})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Empty(t, settings.Export.Formats)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	want := domain.AppSettings{
		Guard:     domain.GuardSettings{Radius: 3.5},
		Countries: domain.CountrySettings{LoopPolicy: domain.LoopPolicyAll},
		Export: domain.ExportSettings{
			Formats: []domain.ExportFormat{domain.ExportJS, domain.ExportSVG},
			Seed:    7,
		},
	}

	require.NoError(t, service.Save(&want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"radius", "guard.radius", "4", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 4.0, s.Guard.Radius)
		}},
		{"loop policy", "countries.loop_policy", "strict", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.LoopPolicyStrict, s.Countries.LoopPolicy)
		}},
		{"formats", "export.formats", "SVG, js, svg", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []domain.ExportFormat{domain.ExportSVG, domain.ExportJS}, s.Export.Formats)
		}},
		{"no formats", "export.formats", "", func(t *testing.T, s *domain.AppSettings) {
			assert.Empty(t, s.Export.Formats)
		}},
		{"seed", "export.seed", "-12", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, int64(-12), s.Export.Seed)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"guard.radius", "0"},
		{"guard.radius", "-2"},
		{"guard.radius", "wide"},
		{"guard.radius", "NaN"},
		{"countries.loop_policy", "loose"},
		{"export.formats", "js,pdf"},
		{"export.seed", "1.5"},
		{"export.colour", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, written := store.Get(tt.key)
			assert.False(t, written)
		})
	}
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("empty store is valid", func(t *testing.T) {
		assert.NoError(t, NewSettingsService(memory.NewConfigStore()).Validate())
	})

	t.Run("bad radius", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("guard.radius", 0.0)
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidInput)
	})

	t.Run("bad policy", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("countries.loop_policy", "loose")
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidInput)
	})

	t.Run("bad format", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("export.formats", []string{"js", "pdf"})
		assert.ErrorIs(t, NewSettingsService(store).Validate(), domain.ErrInvalidInput)
	})
}

func TestSettingsService_KeysAndDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, []string{"guard.radius", "countries.loop_policy", "export.formats", "export.seed"}, service.Keys())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

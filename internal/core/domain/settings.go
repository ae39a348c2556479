package domain

const unknownDescription = "Unknown"

// DefaultGuardRadius is the crossing-guard radius used when none is configured.
const DefaultGuardRadius = 2.0

// LoopPolicy decides how countries whose borders form several disjoint
// loops are accepted and exported.
type LoopPolicy string

// Available loop policies.
const (
	// LoopPolicyFirst accepts any edge set where every endpoint appears
	// exactly twice and exports only the first loop found.
	LoopPolicyFirst LoopPolicy = "first"

	// LoopPolicyStrict rejects edge sets that form more than one loop.
	LoopPolicyStrict LoopPolicy = "strict"

	// LoopPolicyAll accepts several loops and exports each as its own ring.
	LoopPolicyAll LoopPolicy = "all"
)

// IsValid returns true if the loop policy is recognised.
func (p LoopPolicy) IsValid() bool {
	switch p {
	case LoopPolicyFirst, LoopPolicyStrict, LoopPolicyAll:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p LoopPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p LoopPolicy) Description() string {
	switch p {
	case LoopPolicyFirst:
		return "First (accept disjoint loops, export the first)"
	case LoopPolicyStrict:
		return "Strict (a country must be a single loop)"
	case LoopPolicyAll:
		return "All (accept disjoint loops, export every loop)"
	default:
		return unknownDescription
	}
}

// ExportFormat names a derived artifact written next to the document on save.
type ExportFormat string

// Available export formats.
const (
	// ExportJS writes the polygon-rendering script and the page that loads it.
	ExportJS ExportFormat = "js"

	// ExportSVG writes a static SVG preview.
	ExportSVG ExportFormat = "svg"

	// ExportGeoJSON writes a GeoJSON FeatureCollection of country polygons.
	ExportGeoJSON ExportFormat = "geojson"
)

// IsValid returns true if the export format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportJS, ExportSVG, ExportGeoJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportJS:
		return "JavaScript + HTML (canvas polygon renderer)"
	case ExportSVG:
		return "SVG (static preview)"
	case ExportGeoJSON:
		return "GeoJSON (feature collection)"
	default:
		return unknownDescription
	}
}

// AllExportFormats returns every export format.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportJS, ExportSVG, ExportGeoJSON}
}

// AllLoopPolicies returns every loop policy.
func AllLoopPolicies() []LoopPolicy {
	return []LoopPolicy{LoopPolicyFirst, LoopPolicyStrict, LoopPolicyAll}
}

// GuardSettings holds crossing-guard configuration.
type GuardSettings struct {
	// Radius is the minimum distance a new segment must keep from
	// every point other than its own endpoints.
	Radius float64
}

// CountrySettings holds country ledger configuration.
type CountrySettings struct {
	// LoopPolicy decides how multi-loop countries are handled.
	LoopPolicy LoopPolicy
}

// ExportSettings holds derived artifact configuration.
type ExportSettings struct {
	// Formats are written on every save.
	Formats []ExportFormat

	// Seed fixes the random display colours. Zero means time-seeded.
	Seed int64
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Guard holds crossing-guard settings.
	Guard GuardSettings

	// Countries holds country ledger settings.
	Countries CountrySettings

	// Export holds export settings.
	Export ExportSettings
}

// DefaultAppSettings returns the historic drawing-tool defaults:
// a guard radius of 2, first-loop export and the JavaScript renderer only.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Guard: GuardSettings{
			Radius: DefaultGuardRadius,
		},
		Countries: CountrySettings{
			LoopPolicy: LoopPolicyFirst,
		},
		Export: ExportSettings{
			Formats: []ExportFormat{ExportJS},
		},
	}
}

package topology

import (
	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/logger"
)

// Map is the aggregate root of one open document.
type Map struct {
	documentID     string
	referenceImage string

	points     map[uint32]*domain.BorderPoint
	pointOrder []uint32

	borders     map[domain.EdgeKey]*domain.CountryBorder
	borderOrder []domain.EdgeKey

	// parts maps every border part to the border that owns it.
	parts map[domain.EdgeKey]domain.EdgeKey

	countries    map[string]*domain.Country
	countryOrder []string

	guardRadius float64
	loopPolicy  domain.LoopPolicy

	log *logger.Scoped
}

// Option configures a Map.
type Option func(*Map)

// WithGuardRadius sets the crossing-guard radius. Non-positive values are ignored.
func WithGuardRadius(r float64) Option {
	return func(m *Map) {
		if r > 0 {
			m.guardRadius = r
		}
	}
}

// WithLoopPolicy sets how multi-loop countries are handled. Unknown policies are ignored.
func WithLoopPolicy(p domain.LoopPolicy) Option {
	return func(m *Map) {
		if p.IsValid() {
			m.loopPolicy = p
		}
	}
}

// New returns an empty map.
func New(documentID string, opts ...Option) *Map {
	m := &Map{
		documentID:  documentID,
		points:      make(map[uint32]*domain.BorderPoint),
		borders:     make(map[domain.EdgeKey]*domain.CountryBorder),
		parts:       make(map[domain.EdgeKey]domain.EdgeKey),
		countries:   make(map[string]*domain.Country),
		guardRadius: domain.DefaultGuardRadius,
		loopPolicy:  domain.LoopPolicyFirst,
		log:         logger.Scope("topology"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DocumentID returns the identifier of the document this map belongs to.
func (m *Map) DocumentID() string {
	return m.documentID
}

// GuardRadius returns the crossing-guard radius in use.
func (m *Map) GuardRadius() float64 {
	return m.guardRadius
}

// LoopPolicy returns the loop policy in use.
func (m *Map) LoopPolicy() domain.LoopPolicy {
	return m.loopPolicy
}

// ReferenceImage returns the path of the image being traced.
func (m *Map) ReferenceImage() string {
	return m.referenceImage
}

// SetReferenceImage records the path of the image being traced.
// Path validation belongs to the caller.
func (m *Map) SetReferenceImage(path string) {
	m.referenceImage = path
}

// Summary returns element counts.
func (m *Map) Summary() domain.MapSummary {
	s := domain.MapSummary{
		DocumentID:     m.documentID,
		ReferenceImage: m.referenceImage,
		Points:         len(m.points),
		Borders:        len(m.borders),
		Parts:          len(m.parts),
		Countries:      len(m.countries),
	}
	for _, p := range m.points {
		if p.IsEndpoint {
			s.Endpoints++
		}
	}
	return s
}

package topology

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// Snapshot returns a deep copy of the map in its persisted shape.
func (m *Map) Snapshot() domain.MapSnapshot {
	return domain.MapSnapshot{
		DocumentID:     m.documentID,
		ReferenceImage: m.referenceImage,
		Points:         m.BorderPoints(),
		Borders:        m.CountryBorders(),
		Countries:      m.Countries(),
	}
}

// Restore rebuilds a map from a snapshot, keeping its order.
//
// Structural damage (duplicate numbers or names, unordered pairs, borders
// or countries that reference what does not exist, countries that are not
// closed or break the loop policy) fails with domain.ErrCorruptData.
func Restore(snap domain.MapSnapshot, opts ...Option) (*Map, error) {
	m := New(snap.DocumentID, opts...)
	m.referenceImage = snap.ReferenceImage

	for _, p := range snap.Points {
		if p.Number == 0 {
			return nil, fmt.Errorf("point with number 0: %w", domain.ErrCorruptData)
		}
		if _, dup := m.points[p.Number]; dup {
			return nil, fmt.Errorf("point %d appears twice: %w", p.Number, domain.ErrCorruptData)
		}
		pt := p
		m.points[p.Number] = &pt
		m.pointOrder = append(m.pointOrder, p.Number)
	}

	for _, b := range snap.Borders {
		key := b.Endpoints
		if !key.Canonical() {
			return nil, fmt.Errorf("border %s is not ascending: %w", key, domain.ErrCorruptData)
		}
		if _, dup := m.borders[key]; dup {
			return nil, fmt.Errorf("border %s appears twice: %w", key, domain.ErrCorruptData)
		}
		if _, ok := m.points[key[0]]; !ok {
			return nil, fmt.Errorf("border %s ends at missing point %d: %w", key, key[0], domain.ErrCorruptData)
		}
		if _, ok := m.points[key[1]]; !ok {
			return nil, fmt.Errorf("border %s ends at missing point %d: %w", key, key[1], domain.ErrCorruptData)
		}
		if len(b.Parts) == 0 {
			return nil, fmt.Errorf("border %s has no parts: %w", key, domain.ErrCorruptData)
		}
		for _, part := range b.Parts {
			for _, n := range part.PointNumbers {
				if _, ok := m.points[n]; !ok {
					return nil, fmt.Errorf("border %s part %s uses missing point %d: %w",
						key, part.PointNumbers, n, domain.ErrCorruptData)
				}
			}
			if owner, dup := m.parts[part.PointNumbers]; dup {
				return nil, fmt.Errorf("part %s belongs to borders %s and %s: %w",
					part.PointNumbers, owner, key, domain.ErrCorruptData)
			}
			m.parts[part.PointNumbers] = key
		}
		border := b.Clone()
		m.borders[key] = &border
		m.borderOrder = append(m.borderOrder, key)
	}

	for _, c := range snap.Countries {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("country without a name: %w", domain.ErrCorruptData)
		}
		if _, dup := m.countries[c.Name]; dup {
			return nil, fmt.Errorf("country %q appears twice: %w", c.Name, domain.ErrCorruptData)
		}
		for _, key := range c.Borders {
			if _, ok := m.borders[key]; !ok {
				return nil, fmt.Errorf("country %q uses missing border %s: %w", c.Name, key, domain.ErrCorruptData)
			}
		}
		if !IsClosed(c.Borders) {
			return nil, fmt.Errorf("country %q is not a closed shape: %w", c.Name, domain.ErrCorruptData)
		}
		if m.loopPolicy == domain.LoopPolicyStrict {
			if n := CountLoops(c.Borders); n != 1 {
				return nil, fmt.Errorf("country %q forms %d separate loops: %w", c.Name, n, domain.ErrCorruptData)
			}
		}
		country := c.Clone()
		m.countries[c.Name] = &country
		m.countryOrder = append(m.countryOrder, c.Name)
	}

	return m, nil
}

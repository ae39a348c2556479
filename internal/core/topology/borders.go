package topology

import (
	"fmt"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// AddCountryBorder creates a border between two endpoint points with a single
// part spanning them. The pair must already be ascending; it is never sorted.
func (m *Map) AddCountryBorder(endpoints domain.EdgeKey) error {
	if endpoints[0] == endpoints[1] {
		return fmt.Errorf("border %s joins a point to itself: %w", endpoints, domain.ErrInvalidInput)
	}
	if !endpoints.Canonical() {
		return fmt.Errorf("border %s must be ascending: %w", endpoints, domain.ErrInvalidInput)
	}
	if _, ok := m.borders[endpoints]; ok {
		return fmt.Errorf("border %s: %w", endpoints, domain.ErrAlreadyExists)
	}

	p1, ok1 := m.points[endpoints[0]]
	p2, ok2 := m.points[endpoints[1]]
	if !ok1 || !ok2 {
		return fmt.Errorf("border %s references an unknown point: %w", endpoints, domain.ErrNotFound)
	}
	for _, n := range endpoints {
		if owner, ok := m.interiorOwner(n); ok {
			return fmt.Errorf("point %d is interior to border %s: %w", n, owner, domain.ErrInvalidInput)
		}
	}

	if err := m.checkSegment(p1, p2); err != nil {
		m.log.Debug("border %s rejected: %v", endpoints, err)
		return err
	}

	m.borders[endpoints] = &domain.CountryBorder{
		Endpoints: endpoints,
		Parts:     []domain.BorderPart{{PointNumbers: endpoints}},
	}
	m.borderOrder = append(m.borderOrder, endpoints)
	m.parts[endpoints] = endpoints

	m.log.Debug("border %s added", endpoints)
	return nil
}

// InsertBorderPoint splits the part spanning segment at point n.
//
// The part keeps its first point and now ends at n; a new part from the
// segment's second point to n is appended to the border. Points are expected
// to be allocated after the part they split, so n must not be lower than
// segment[1].
func (m *Map) InsertBorderPoint(segment domain.EdgeKey, n uint32) error {
	if segment[0] == segment[1] {
		return fmt.Errorf("segment %s joins a point to itself: %w", segment, domain.ErrInvalidInput)
	}
	if !segment.Canonical() {
		return fmt.Errorf("segment %s must be ascending: %w", segment, domain.ErrInvalidInput)
	}
	if segment[1] > n {
		return fmt.Errorf("point %d was allocated before segment %s: %w", n, segment, domain.ErrInvalidInput)
	}

	p1, ok1 := m.points[segment[0]]
	p2, ok2 := m.points[segment[1]]
	p3, ok3 := m.points[n]
	if !ok1 || !ok2 || !ok3 {
		return fmt.Errorf("split of %s at %d references an unknown point: %w", segment, n, domain.ErrNotFound)
	}

	owner, ok := m.parts[segment]
	if !ok {
		return fmt.Errorf("no border part spans %s: %w", segment, domain.ErrNotFound)
	}
	border := m.borders[owner]

	if border.Uses(n) {
		return fmt.Errorf("point %d is already part of border %s: %w", n, owner, domain.ErrInvalidInput)
	}
	if p3.IsEndpoint {
		return fmt.Errorf("point %d is an endpoint and cannot subdivide a border: %w", n, domain.ErrInvalidInput)
	}
	for _, key := range m.borderOrder {
		if m.borders[key].Uses(n) {
			return fmt.Errorf("point %d is already part of border %s: %w", n, key, domain.ErrInvalidInput)
		}
	}

	if err := m.checkSegment(p1, p3); err != nil {
		m.log.Debug("split of %s at %d rejected: %v", segment, n, err)
		return err
	}
	if err := m.checkSegment(p2, p3); err != nil {
		m.log.Debug("split of %s at %d rejected: %v", segment, n, err)
		return err
	}

	head := domain.NewEdgeKey(segment[0], n)
	tail := domain.NewEdgeKey(segment[1], n)
	for i := range border.Parts {
		if border.Parts[i].PointNumbers == segment {
			border.Parts[i].PointNumbers = head
			break
		}
	}
	border.Parts = append(border.Parts, domain.BorderPart{PointNumbers: tail})

	delete(m.parts, segment)
	m.parts[head] = owner
	m.parts[tail] = owner

	m.log.Debug("border %s split %s at point %d", owner, segment, n)
	return nil
}

// RemoveCountryBorder deletes a border that no country uses, together with
// every interior point of the border.
func (m *Map) RemoveCountryBorder(endpoints domain.EdgeKey) error {
	border, ok := m.borders[endpoints]
	if !ok {
		return fmt.Errorf("border %s: %w", endpoints, domain.ErrNotFound)
	}

	for _, part := range border.Parts {
		for _, n := range part.PointNumbers {
			if _, ok := m.points[n]; !ok {
				return fmt.Errorf("border %s references missing point %d: %w", endpoints, n, domain.ErrNotFound)
			}
		}
	}

	for _, name := range m.countryOrder {
		if m.countries[name].References(endpoints) {
			return fmt.Errorf("border %s is used by country %q: %w", endpoints, name, domain.ErrInUse)
		}
	}

	interior := border.InteriorPoints()
	for _, n := range interior {
		m.deletePoint(n)
	}
	for _, part := range border.Parts {
		delete(m.parts, part.PointNumbers)
	}
	delete(m.borders, endpoints)
	for i, k := range m.borderOrder {
		if k == endpoints {
			m.borderOrder = append(m.borderOrder[:i], m.borderOrder[i+1:]...)
			break
		}
	}

	m.log.Debug("border %s removed with %d interior points", endpoints, len(interior))
	return nil
}

// CountryBorder returns the border with the given endpoints.
func (m *Map) CountryBorder(endpoints domain.EdgeKey) (domain.CountryBorder, bool) {
	b, ok := m.borders[endpoints]
	if !ok {
		return domain.CountryBorder{}, false
	}
	return b.Clone(), true
}

// CountryBorders returns every border in creation order.
func (m *Map) CountryBorders() []domain.CountryBorder {
	out := make([]domain.CountryBorder, 0, len(m.borderOrder))
	for _, k := range m.borderOrder {
		out = append(out, m.borders[k].Clone())
	}
	return out
}

// interiorOwner returns the border that uses n as an interior point.
func (m *Map) interiorOwner(n uint32) (domain.EdgeKey, bool) {
	for _, key := range m.borderOrder {
		if !key.Contains(n) && m.borders[key].Uses(n) {
			return key, true
		}
	}
	return domain.EdgeKey{}, false
}

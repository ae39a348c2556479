package topology

import (
	"fmt"
	"math"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// AddBorderPoint stores a new point and returns its number, one above the
// highest number currently in use.
func (m *Map) AddBorderPoint(x, y float64, isEndpoint bool) (uint32, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("point (%v, %v) is not finite: %w", x, y, domain.ErrInvalidInput)
	}

	var highest uint32
	for n := range m.points {
		if n > highest {
			highest = n
		}
	}
	if highest == math.MaxUint32 {
		return 0, fmt.Errorf("point numbers exhausted: %w", domain.ErrInvalidInput)
	}

	p := &domain.BorderPoint{Number: highest + 1, X: x, Y: y, IsEndpoint: isEndpoint}
	m.points[p.Number] = p
	m.pointOrder = append(m.pointOrder, p.Number)

	m.log.Debug("point %d added at (%g, %g) endpoint=%t", p.Number, x, y, isEndpoint)
	return p.Number, nil
}

// RemoveBorderPoint deletes a point that no border uses. Interior points go
// away with their border in RemoveCountryBorder.
func (m *Map) RemoveBorderPoint(n uint32) error {
	if _, ok := m.points[n]; !ok {
		return fmt.Errorf("point %d: %w", n, domain.ErrNotFound)
	}

	for _, key := range m.borderOrder {
		if key.Contains(n) {
			return fmt.Errorf("point %d ends border %s: %w", n, key, domain.ErrInUse)
		}
	}
	for part, owner := range m.parts {
		if part.Contains(n) {
			return fmt.Errorf("point %d lies inside border %s: %w", n, owner, domain.ErrInUse)
		}
	}

	m.deletePoint(n)
	m.log.Debug("point %d removed", n)
	return nil
}

// BorderPoint returns the point with number n.
func (m *Map) BorderPoint(n uint32) (domain.BorderPoint, bool) {
	p, ok := m.points[n]
	if !ok {
		return domain.BorderPoint{}, false
	}
	return *p, true
}

// BorderPoints returns every point in insertion order.
func (m *Map) BorderPoints() []domain.BorderPoint {
	out := make([]domain.BorderPoint, 0, len(m.pointOrder))
	for _, n := range m.pointOrder {
		out = append(out, *m.points[n])
	}
	return out
}

func (m *Map) deletePoint(n uint32) {
	delete(m.points, n)
	for i, v := range m.pointOrder {
		if v == n {
			m.pointOrder = append(m.pointOrder[:i], m.pointOrder[i+1:]...)
			break
		}
	}
}

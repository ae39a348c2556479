package topology

import (
	"fmt"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/geometry"
)

func at(p *domain.BorderPoint) geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

// checkSegment rejects the segment p1-p2 if it crosses a border part that
// does not share one of its points, or passes within the guard radius of any
// point other than p1 and p2.
func (m *Map) checkSegment(p1, p2 *domain.BorderPoint) error {
	a, b := at(p1), at(p2)

	for _, key := range m.borderOrder {
		for _, part := range m.borders[key].Parts {
			if part.PointNumbers.Contains(p1.Number) || part.PointNumbers.Contains(p2.Number) {
				continue
			}
			q1, ok1 := m.points[part.PointNumbers[0]]
			q2, ok2 := m.points[part.PointNumbers[1]]
			if !ok1 || !ok2 {
				continue
			}
			if geometry.SegmentsIntersect(a, b, at(q1), at(q2)) {
				return fmt.Errorf("segment %d-%d crosses part %s of border %s: %w",
					p1.Number, p2.Number, part.PointNumbers, key, domain.ErrGeometryConflict)
			}
		}
	}

	for _, n := range m.pointOrder {
		if n == p1.Number || n == p2.Number {
			continue
		}
		if geometry.SegmentIntersectsCircle(a, b, at(m.points[n]), m.guardRadius) {
			return fmt.Errorf("segment %d-%d passes within %g of point %d: %w",
				p1.Number, p2.Number, m.guardRadius, n, domain.ErrGeometryConflict)
		}
	}

	return nil
}

// Package geometry provides the 2D predicates behind the crossing guard.
//
// Coordinates are opaque canvas scalars; there is no projection or unit.
package geometry

// minDirection is the squared segment length below which a segment is
// treated as a point and never reported as touching a circle.
const minDirection = 1e-7

// Point is a canvas coordinate.
type Point struct {
	X float64
	Y float64
}

// SegmentsIntersect reports whether segment ab crosses segment cd,
// endpoints included.
//
// Parallel segments only intersect when they lie on the same line, and then
// always do, even if disjoint. Callers must not use this to detect
// collinear overlap.
func SegmentsIntersect(a, b, c, d Point) bool {
	denominator := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	numerator1 := (a.Y-c.Y)*(d.X-c.X) - (a.X-c.X)*(d.Y-c.Y)
	numerator2 := (a.Y-c.Y)*(b.X-a.X) - (a.X-c.X)*(b.Y-a.Y)

	if denominator == 0 {
		return numerator1 == 0 && numerator2 == 0
	}

	r := numerator1 / denominator
	s := numerator2 / denominator

	return r >= 0 && r <= 1 && s >= 0 && s <= 1
}

// SegmentIntersectsCircle reports whether the line through p1 and p2 passes
// within radius of center, after rejecting circles outside the segment's
// bounding box grown by radius.
func SegmentIntersectsCircle(p1, p2, center Point, radius float64) bool {
	if (center.X+radius < p1.X && center.X+radius < p2.X) ||
		(center.X-radius > p1.X && center.X-radius > p2.X) ||
		(center.Y+radius < p1.Y && center.Y+radius < p2.Y) ||
		(center.Y-radius > p1.Y && center.Y-radius > p2.Y) {
		return false
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	a := dx*dx + dy*dy
	b := 2 * (dx*(p1.X-center.X) + dy*(p1.Y-center.Y))
	c := (p1.X-center.X)*(p1.X-center.X) + (p1.Y-center.Y)*(p1.Y-center.Y) - radius*radius

	det := b*b - 4*a*c
	if a <= minDirection || det < 0 {
		return false
	}

	return true
}

package topology

import (
	"fmt"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// IsClosed reports whether every point number occurs exactly twice across
// the edges, i.e. the edges form one or more disjoint cycles.
func IsClosed(edges []domain.EdgeKey) bool {
	if len(edges) == 0 {
		return false
	}
	count := make(map[uint32]int)
	for _, e := range edges {
		count[e[0]]++
		count[e[1]]++
	}
	for _, c := range count {
		if c != 2 {
			return false
		}
	}
	return true
}

// CountLoops returns the number of connected components among the edges.
func CountLoops(edges []domain.EdgeKey) int {
	parent := make(map[uint32]uint32)
	var find func(uint32) uint32
	find = func(n uint32) uint32 {
		p, ok := parent[n]
		if !ok {
			parent[n] = n
			return n
		}
		if p == n {
			return n
		}
		root := find(p)
		parent[n] = root
		return root
	}

	for _, e := range edges {
		a, b := find(e[0]), find(e[1])
		if a != b {
			parent[a] = b
		}
	}

	roots := make(map[uint32]bool)
	for n := range parent {
		roots[find(n)] = true
	}
	return len(roots)
}

// walk orders segments into rings by repeatedly following the shared point
// to the next unused segment. A ring ends when no unused segment touches its
// current point. With all false only the first ring is walked.
func walk(segments []domain.EdgeKey, all bool) [][]uint32 {
	touching := make(map[uint32][]int)
	for i, s := range segments {
		touching[s[0]] = append(touching[s[0]], i)
		touching[s[1]] = append(touching[s[1]], i)
	}
	used := make([]bool, len(segments))

	next := func(n uint32) (int, bool) {
		for _, i := range touching[n] {
			if !used[i] {
				return i, true
			}
		}
		return 0, false
	}

	var rings [][]uint32
	for start := range segments {
		if used[start] {
			continue
		}
		used[start] = true
		ring := []uint32{segments[start][0]}
		at := segments[start][1]
		for {
			i, ok := next(at)
			if !ok {
				break
			}
			ring = append(ring, at)
			used[i] = true
			at = segments[i].Other(at)
		}
		if at != ring[0] {
			// open chain: keep the last point so the outline is complete
			ring = append(ring, at)
		}
		rings = append(rings, ring)
		if !all {
			break
		}
	}
	return rings
}

// Polygon linearises the named country into rings of vertices, walking the
// parts of its borders so subdivision points are included.
func (m *Map) Polygon(name string) (domain.Polygon, error) {
	c, ok := m.countries[name]
	if !ok {
		return domain.Polygon{}, fmt.Errorf("country %q: %w", name, domain.ErrNotFound)
	}

	var segments []domain.EdgeKey
	for _, key := range c.Borders {
		b, ok := m.borders[key]
		if !ok {
			return domain.Polygon{}, fmt.Errorf("country %q uses missing border %s: %w", name, key, domain.ErrNotFound)
		}
		for _, part := range b.Parts {
			segments = append(segments, part.PointNumbers)
		}
	}

	poly := domain.Polygon{Name: name}
	for _, numbers := range walk(segments, m.loopPolicy == domain.LoopPolicyAll) {
		ring := make(domain.Ring, 0, len(numbers))
		for _, n := range numbers {
			p, ok := m.points[n]
			if !ok {
				return domain.Polygon{}, fmt.Errorf("country %q uses missing point %d: %w", name, n, domain.ErrNotFound)
			}
			ring = append(ring, domain.Vertex{Number: n, X: p.X, Y: p.Y})
		}
		poly.Rings = append(poly.Rings, ring)
	}
	return poly, nil
}

// Polygons linearises every country in creation order.
func (m *Map) Polygons() ([]domain.Polygon, error) {
	out := make([]domain.Polygon, 0, len(m.countryOrder))
	for _, name := range m.countryOrder {
		p, err := m.Polygon(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// addPoints adds endpoint points at the given coordinates and returns their numbers.
func addPoints(t *testing.T, m *Map, coords ...[2]float64) []uint32 {
	t.Helper()
	out := make([]uint32, 0, len(coords))
	for _, c := range coords {
		n, err := m.AddBorderPoint(c[0], c[1], true)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

// triangle builds points 1, 2, 3 and borders 1-2, 2-3, 1-3.
func triangle(t *testing.T, m *Map) []domain.EdgeKey {
	t.Helper()
	addPoints(t, m, [2]float64{0, 0}, [2]float64{100, 0}, [2]float64{50, 80})
	keys := []domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}}
	for _, k := range keys {
		require.NoError(t, m.AddCountryBorder(k))
	}
	return keys
}

// square builds four endpoint points at the corners of a square with the
// given origin and side, plus its four borders, and returns the border keys.
func square(t *testing.T, m *Map, x, y, side float64) []domain.EdgeKey {
	t.Helper()
	n := addPoints(t, m,
		[2]float64{x, y}, [2]float64{x + side, y},
		[2]float64{x + side, y + side}, [2]float64{x, y + side})
	keys := []domain.EdgeKey{
		domain.NewEdgeKey(n[0], n[1]),
		domain.NewEdgeKey(n[1], n[2]),
		domain.NewEdgeKey(n[2], n[3]),
		domain.NewEdgeKey(n[0], n[3]),
	}
	for _, k := range keys {
		require.NoError(t, m.AddCountryBorder(k))
	}
	return keys
}

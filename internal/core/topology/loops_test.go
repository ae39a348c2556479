package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name  string
		edges []domain.EdgeKey
		want  bool
	}{
		{"triangle", []domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}}, true},
		{"open path", []domain.EdgeKey{{1, 2}, {2, 3}}, false},
		{"two triangles", []domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}}, true},
		{"figure eight", []domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}, {1, 4}, {4, 5}, {1, 5}}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClosed(tt.edges))
		})
	}
}

func TestCountLoops(t *testing.T) {
	assert.Equal(t, 1, CountLoops([]domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}}))
	assert.Equal(t, 2, CountLoops([]domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}}))
	assert.Equal(t, 0, CountLoops(nil))
}

func TestWalk(t *testing.T) {
	t.Run("follows shared points regardless of slice order", func(t *testing.T) {
		rings := walk([]domain.EdgeKey{{1, 2}, {3, 4}, {1, 4}, {2, 3}}, false)
		assert.Equal(t, [][]uint32{{1, 2, 3, 4}}, rings)
	})

	t.Run("stops after the first loop", func(t *testing.T) {
		segments := []domain.EdgeKey{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}}
		assert.Equal(t, [][]uint32{{1, 2, 3}}, walk(segments, false))
		assert.Equal(t, [][]uint32{{1, 2, 3}, {4, 5, 6}}, walk(segments, true))
	})

	t.Run("open chain keeps its last point", func(t *testing.T) {
		assert.Equal(t, [][]uint32{{1, 2, 3}}, walk([]domain.EdgeKey{{1, 2}, {2, 3}}, false))
	})
}

func TestPolygon_IncludesSubdivisionPoints(t *testing.T) {
	m := New("doc")
	keys := triangle(t, m)
	n, err := m.AddBorderPoint(50, -10, false)
	require.NoError(t, err)
	require.NoError(t, m.InsertBorderPoint(keys[0], n))
	require.NoError(t, m.AddCountry("Tri", keys))

	poly, err := m.Polygon("Tri")

	require.NoError(t, err)
	assert.Equal(t, "Tri", poly.Name)
	require.Len(t, poly.Rings, 1)
	assert.Equal(t, domain.Ring{
		{Number: 1, X: 0, Y: 0},
		{Number: 4, X: 50, Y: -10},
		{Number: 2, X: 100, Y: 0},
		{Number: 3, X: 50, Y: 80},
	}, poly.Rings[0])
}

func TestPolygons(t *testing.T) {
	m := New("doc")
	a := square(t, m, 0, 0, 10)
	b := square(t, m, 100, 0, 10)
	require.NoError(t, m.AddCountry("West", a))
	require.NoError(t, m.AddCountry("East", b))

	polys, err := m.Polygons()

	require.NoError(t, err)
	require.Len(t, polys, 2)
	assert.Equal(t, "West", polys[0].Name)
	assert.Equal(t, "East", polys[1].Name)

	_, err = m.Polygon("North")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package geojsonmap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

func sample() (*domain.MapSnapshot, []domain.Polygon) {
	snap := &domain.MapSnapshot{
		Points: []domain.BorderPoint{
			{Number: 1, X: 0, Y: 0, IsEndpoint: true},
			{Number: 2, X: 100, Y: 0, IsEndpoint: true},
			{Number: 3, X: 50, Y: 80, IsEndpoint: true},
			{Number: 4, X: 50, Y: -10},
			{Number: 5, X: 75, Y: -5},
		},
		Borders: []domain.CountryBorder{
			{Endpoints: domain.NewEdgeKey(1, 2), Parts: []domain.BorderPart{
				{PointNumbers: domain.NewEdgeKey(1, 4)},
				{PointNumbers: domain.NewEdgeKey(2, 5)},
				{PointNumbers: domain.NewEdgeKey(4, 5)},
			}},
			{Endpoints: domain.NewEdgeKey(2, 3), Parts: []domain.BorderPart{{PointNumbers: domain.NewEdgeKey(2, 3)}}},
		},
	}
	polys := []domain.Polygon{
		{Name: "Tri", Rings: []domain.Ring{{{Number: 1, X: 0, Y: 0}, {Number: 2, X: 100, Y: 0}, {Number: 3, X: 50, Y: 80}}}},
		{Name: "Isles", Rings: []domain.Ring{
			{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}},
		}},
		{Name: "Empty"},
	}
	return snap, polys
}

func TestBuild(t *testing.T) {
	snap, polys := sample()

	fc := Build(snap, polys)

	require.Len(t, fc.Features, 4)

	tri := fc.Features[0]
	assert.True(t, tri.Geometry.IsPolygon())
	assert.Equal(t, "Tri", tri.Properties["name"])
	assert.Equal(t, [][][]float64{{{0, 0}, {100, 0}, {50, 80}, {0, 0}}}, tri.Geometry.Polygon)

	isles := fc.Features[1]
	assert.True(t, isles.Geometry.IsMultiPolygon())
	assert.Len(t, isles.Geometry.MultiPolygon, 2)

	border := fc.Features[2]
	assert.True(t, border.Geometry.IsLineString())
	assert.Equal(t, "1-2", border.Properties["endpoints"])
	assert.Equal(t, [][]float64{{0, 0}, {50, -10}, {75, -5}, {100, 0}}, border.Geometry.LineString,
		"parts are followed from the first endpoint")
}

func TestExporter_Export(t *testing.T) {
	snap, polys := sample()
	base := filepath.Join(t.TempDir(), "world")

	paths, err := New().Export(context.Background(), driven.ExportRequest{
		BasePath: base,
		Snapshot: *snap,
		Polygons: polys,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{base + ".geojson"}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 4)
	assert.Equal(t, domain.ExportGeoJSON, New().Format())
}

// Package geojsonmap writes a map as a GeoJSON FeatureCollection.
//
// Each country is a Polygon feature, or a MultiPolygon when it is exported
// with several loops. Each border is a LineString feature following its
// parts. Canvas coordinates are written unchanged.
package geojsonmap

import (
	"context"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter writes <base>.geojson.
type Exporter struct{}

// New creates a GeoJSON exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format identifies the exporter.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportGeoJSON
}

// Export writes the feature collection and returns its path.
func (e *Exporter) Export(_ context.Context, req driven.ExportRequest) ([]string, error) {
	data, err := Build(&req.Snapshot, req.Polygons).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding geojson: %w", err)
	}

	path := req.BasePath + ".geojson"
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return []string{path}, nil
}

// Build assembles the feature collection: countries first, then borders.
func Build(snap *domain.MapSnapshot, polygons []domain.Polygon) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, poly := range polygons {
		var rings [][][]float64
		for _, ring := range poly.Rings {
			if len(ring) > 0 {
				rings = append(rings, closedRing(ring))
			}
		}
		if len(rings) == 0 {
			continue
		}

		var f *geojson.Feature
		if len(rings) == 1 {
			f = geojson.NewPolygonFeature([][][]float64{rings[0]})
		} else {
			multi := make([][][][]float64, len(rings))
			for i, r := range rings {
				multi[i] = [][][]float64{r}
			}
			f = geojson.NewMultiPolygonFeature(multi...)
		}
		f.SetProperty("kind", "country")
		f.SetProperty("name", poly.Name)
		fc.AddFeature(f)
	}

	points := make(map[uint32]domain.BorderPoint, len(snap.Points))
	for _, p := range snap.Points {
		points[p.Number] = p
	}
	for _, b := range snap.Borders {
		line := borderLine(b, points)
		if len(line) < 2 {
			continue
		}
		f := geojson.NewLineStringFeature(line)
		f.SetProperty("kind", "border")
		f.SetProperty("endpoints", b.Endpoints.String())
		fc.AddFeature(f)
	}

	return fc
}

// closedRing repeats the first vertex at the end, as GeoJSON requires.
func closedRing(ring domain.Ring) [][]float64 {
	out := make([][]float64, 0, len(ring)+1)
	for _, v := range ring {
		out = append(out, []float64{v.X, v.Y})
	}
	return append(out, []float64{ring[0].X, ring[0].Y})
}

// borderLine orders a border's parts from its first endpoint to its second.
// Parts whose points are missing end the line early.
func borderLine(b domain.CountryBorder, points map[uint32]domain.BorderPoint) [][]float64 {
	used := make([]bool, len(b.Parts))
	at := b.Endpoints[0]
	p, ok := points[at]
	if !ok {
		return nil
	}
	line := [][]float64{{p.X, p.Y}}

	for {
		next := -1
		for i, part := range b.Parts {
			if !used[i] && part.PointNumbers.Contains(at) {
				next = i
				break
			}
		}
		if next < 0 {
			return line
		}
		used[next] = true
		at = b.Parts[next].PointNumbers.Other(at)
		p, ok := points[at]
		if !ok {
			return line
		}
		line = append(line, []float64{p.X, p.Y})
	}
}

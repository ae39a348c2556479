package svgmap

import (
	"bytes"
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

func sample() (*domain.MapSnapshot, []domain.Polygon) {
	snap := &domain.MapSnapshot{
		DocumentID: "doc",
		Points: []domain.BorderPoint{
			{Number: 1, X: 10, Y: 10, IsEndpoint: true},
			{Number: 2, X: 110, Y: 10, IsEndpoint: true},
			{Number: 3, X: 60, Y: 90, IsEndpoint: true},
			{Number: 4, X: 60, Y: 0},
		},
		Borders: []domain.CountryBorder{
			{Endpoints: domain.NewEdgeKey(1, 2), Parts: []domain.BorderPart{
				{PointNumbers: domain.NewEdgeKey(1, 4)},
				{PointNumbers: domain.NewEdgeKey(2, 4)},
			}},
			{Endpoints: domain.NewEdgeKey(2, 3), Parts: []domain.BorderPart{{PointNumbers: domain.NewEdgeKey(2, 3)}}},
			{Endpoints: domain.NewEdgeKey(1, 3), Parts: []domain.BorderPart{
				{PointNumbers: domain.NewEdgeKey(1, 3)},
				{PointNumbers: domain.NewEdgeKey(3, 9)},
			}},
		},
	}
	polys := []domain.Polygon{{Name: "Tri", Rings: []domain.Ring{{
		{Number: 1, X: 10, Y: 10}, {Number: 4, X: 60, Y: 0},
		{Number: 2, X: 110, Y: 10}, {Number: 3, X: 60, Y: 90},
	}}}}
	return snap, polys
}

func TestRender(t *testing.T) {
	snap, polys := sample()
	var buf bytes.Buffer

	Render(&buf, snap, polys, 3)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<polygon"))
	assert.Equal(t, 4, strings.Count(out, "<line"), "part with a missing point is skipped")
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	assert.Contains(t, out, ">Tri</text>")
	assert.Contains(t, out, `width="140"`)
	assert.Contains(t, out, `height="130"`)

	// output is well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &domain.MapSnapshot{}, nil, 1)
	assert.Contains(t, buf.String(), "</svg>")
}

func TestRender_SeedIsDeterministic(t *testing.T) {
	snap, polys := sample()
	var a, b bytes.Buffer
	Render(&a, snap, polys, 11)
	Render(&b, snap, polys, 11)
	assert.Equal(t, a.String(), b.String())
}

func TestExporter_Export(t *testing.T) {
	snap, polys := sample()
	base := filepath.Join(t.TempDir(), "world")

	paths, err := New().Export(context.Background(), driven.ExportRequest{
		BasePath: base,
		Snapshot: *snap,
		Polygons: polys,
		Seed:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{base + ".svg"}, paths)
	data, err := os.ReadFile(base + ".svg")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))
	assert.Equal(t, domain.ExportSVG, New().Format())
}

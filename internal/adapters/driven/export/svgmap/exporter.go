// Package svgmap writes a static SVG preview of a map: filled countries,
// every border part and every border point.
package svgmap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

const padding = 20

const (
	styleBackground = "fill:#ffffff"
	styleBorder     = "stroke:#555555;stroke-width:1;fill:none"
	styleEndpoint   = "fill:#c0392b"
	styleInterior   = "fill:#7f8c8d"
	styleLabel      = "font-family:sans-serif;font-size:11px;text-anchor:middle;fill:#222222"
)

// Exporter writes <base>.svg.
type Exporter struct{}

// New creates an SVG exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format identifies the exporter.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportSVG
}

// Export writes the preview and returns its path.
func (e *Exporter) Export(_ context.Context, req driven.ExportRequest) ([]string, error) {
	var buf bytes.Buffer
	Render(&buf, &req.Snapshot, req.Polygons, req.Seed)

	path := req.BasePath + ".svg"
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return []string{path}, nil
}

// frame maps map coordinates onto the canvas.
type frame struct {
	minX, minY float64
}

func (f frame) x(v float64) int { return int(math.Round(v-f.minX)) + padding }
func (f frame) y(v float64) int { return int(math.Round(v-f.minY)) + padding }

// Render draws the preview to w. Country fill colours are drawn from seed,
// or from the clock when seed is zero.
func Render(w io.Writer, snap *domain.MapSnapshot, polygons []domain.Polygon, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	f, width, height := bounds(snap.Points)
	points := make(map[uint32]domain.BorderPoint, len(snap.Points))
	for _, p := range snap.Points {
		points[p.Number] = p
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("bordermap " + snap.DocumentID)
	canvas.Rect(0, 0, width, height, styleBackground)

	canvas.Gid("countries")
	for _, poly := range polygons {
		fill := fmt.Sprintf("fill:#%06X;fill-opacity:0.6;stroke:none", rng.IntN(0x1000000))
		for _, ring := range poly.Rings {
			xs := make([]int, len(ring))
			ys := make([]int, len(ring))
			for i, v := range ring {
				xs[i], ys[i] = f.x(v.X), f.y(v.Y)
			}
			canvas.Polygon(xs, ys, fill)
		}
	}
	canvas.Gend()

	canvas.Gid("borders")
	for _, b := range snap.Borders {
		for _, part := range b.Parts {
			p1, ok1 := points[part.PointNumbers[0]]
			p2, ok2 := points[part.PointNumbers[1]]
			if !ok1 || !ok2 {
				continue
			}
			canvas.Line(f.x(p1.X), f.y(p1.Y), f.x(p2.X), f.y(p2.Y), styleBorder)
		}
	}
	canvas.Gend()

	canvas.Gid("points")
	for _, p := range snap.Points {
		if p.IsEndpoint {
			canvas.Circle(f.x(p.X), f.y(p.Y), 3, styleEndpoint)
		} else {
			canvas.Circle(f.x(p.X), f.y(p.Y), 2, styleInterior)
		}
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, poly := range polygons {
		if len(poly.Rings) == 0 || len(poly.Rings[0]) == 0 {
			continue
		}
		cx, cy := centroid(poly.Rings[0])
		canvas.Text(f.x(cx), f.y(cy), poly.Name, styleLabel)
	}
	canvas.Gend()

	canvas.End()
}

// bounds returns the frame and canvas size that fit every point.
func bounds(points []domain.BorderPoint) (frame, int, int) {
	if len(points) == 0 {
		return frame{}, 2 * padding, 2 * padding
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	width := int(math.Ceil(maxX-minX)) + 2*padding
	height := int(math.Ceil(maxY-minY)) + 2*padding
	return frame{minX: minX, minY: minY}, width, height
}

// centroid is the vertex average, which is enough to place a label.
func centroid(ring domain.Ring) (float64, float64) {
	var sx, sy float64
	for _, v := range ring {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(ring))
	return sx / n, sy / n
}

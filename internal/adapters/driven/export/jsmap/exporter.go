// Package jsmap writes the canvas renderer script and the page that loads it.
//
// The script embeds every country polygon as {"Name": [[[x,y],...],...]}
// with coordinates truncated to integers. The page colours each country
// with a random colour.
package jsmap

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

//go:embed templates/map.js
var jsTemplate string

//go:embed templates/map.html
var htmlTemplate string

// Exporter writes <base>.js and <base>.html.
type Exporter struct{}

// New creates a JS/HTML exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format identifies the exporter.
func (e *Exporter) Format() domain.ExportFormat {
	return domain.ExportJS
}

// Export writes both files and returns their paths.
func (e *Exporter) Export(_ context.Context, req driven.ExportRequest) ([]string, error) {
	jsPath := req.BasePath + ".js"
	htmlPath := req.BasePath + ".html"

	if err := os.WriteFile(jsPath, []byte(RenderJS(req.Polygons)), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", jsPath, err)
	}

	title := filepath.Base(req.BasePath)
	page := RenderHTML(title, filepath.Base(jsPath), req.Polygons, newRand(req.Seed))
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", htmlPath, err)
	}

	return []string{jsPath, htmlPath}, nil
}

// RenderJS fills the renderer script with the polygon data.
func RenderJS(polygons []domain.Polygon) string {
	names := make([]string, 0, len(polygons))
	for _, p := range polygons {
		names = append(names, p.Name)
	}

	return strings.NewReplacer(
		"#PlaceHolderOMapData#", MapData(polygons),
		"#PlaceHolderCountryNames#", quote(strings.Join(names, ",")),
	).Replace(jsTemplate)
}

// RenderHTML fills the page template. Each country gets a colour drawn
// from rng in country order.
func RenderHTML(title, jsFile string, polygons []domain.Polygon, rng *rand.Rand) string {
	var detail strings.Builder
	for i, p := range polygons {
		if i > 0 {
			detail.WriteString("\n        ")
		}
		fmt.Fprintf(&detail, "%s: \"#%06X\",", quote(p.Name), rng.IntN(0x1000000))
	}

	return strings.NewReplacer(
		"#PlaceHolderTitle#", html.EscapeString(title),
		"#PlaceHolderJSFileName#", html.EscapeString(jsFile),
		"#PlaceHolderDetail#", detail.String(),
	).Replace(htmlTemplate)
}

// MapData renders polygons as a JavaScript object literal.
func MapData(polygons []domain.Polygon) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range polygons {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(p.Name))
		b.WriteString(":[")
		for j, ring := range p.Rings {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('[')
			for k, v := range ring {
				if k > 0 {
					b.WriteByte(',')
				}
				b.WriteByte('[')
				b.WriteString(strconv.Itoa(int(v.X)))
				b.WriteByte(',')
				b.WriteString(strconv.Itoa(int(v.Y)))
				b.WriteByte(']')
			}
			b.WriteByte(']')
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

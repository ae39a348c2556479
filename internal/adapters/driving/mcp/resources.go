package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for map resources.
	uriScheme = "bordermap://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	resources := []struct {
		name        string
		description string
	}{
		{"summary", "Counts of points, borders and countries in the open map"},
		{"points", "All border points in insertion order"},
		{"borders", "All country borders with their parts"},
		{"countries", "All countries with the borders enclosing them"},
		{"polygons", "Every country linearised into ordered vertices"},
		{"settings", "Effective application settings"},
	}
	for _, r := range resources {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + r.name,
			Name:        r.name,
			Description: r.description,
			MIMEType:    "application/json",
		}, s.handleResource)
	}
}

// handleResource serves every static map resource.
func (s *Server) handleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	value, err := s.resourceValue(resourceName(req.Params.URI))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", req.Params.URI, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// resourceValue returns the JSON-ready value for a resource, or nil when
// the resource does not exist.
func (s *Server) resourceValue(name string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.ports.Document

	switch name {
	case "summary":
		return doc.Summary(), nil

	case "points":
		type pointInfo struct {
			Number   uint32  `json:"number"`
			X        float64 `json:"x"`
			Y        float64 `json:"y"`
			Endpoint bool    `json:"endpoint"`
		}
		points := doc.BorderPoints()
		infos := make([]pointInfo, len(points))
		for i, p := range points {
			infos[i] = pointInfo{Number: p.Number, X: p.X, Y: p.Y, Endpoint: p.IsEndpoint}
		}
		return infos, nil

	case "borders":
		type borderInfo struct {
			Endpoints string   `json:"endpoints"`
			Parts     []string `json:"parts"`
		}
		borders := doc.CountryBorders()
		infos := make([]borderInfo, len(borders))
		for i, b := range borders {
			infos[i] = borderInfo{Endpoints: b.Endpoints.String(), Parts: make([]string, len(b.Parts))}
			for j, p := range b.Parts {
				infos[i].Parts[j] = p.PointNumbers.String()
			}
		}
		return infos, nil

	case "countries":
		type countryInfo struct {
			Name    string   `json:"name"`
			Borders []string `json:"borders"`
		}
		countries := doc.Countries()
		infos := make([]countryInfo, len(countries))
		for i, c := range countries {
			infos[i] = countryInfo{Name: c.Name, Borders: make([]string, len(c.Borders))}
			for j, k := range c.Borders {
				infos[i].Borders[j] = k.String()
			}
		}
		return infos, nil

	case "polygons":
		polygons, err := doc.Polygons()
		if err != nil {
			return nil, fmt.Errorf("linearising countries: %w", err)
		}
		out := make([]PolygonOutput, len(polygons))
		for i, p := range polygons {
			out[i] = polygonOutput(p)
		}
		return out, nil

	case "settings":
		if s.ports.Settings == nil {
			return nil, nil
		}
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		return settings, nil
	}

	return nil, nil
}

// resourceName extracts the name from a URI like bordermap://points.
func resourceName(uri string) string {
	if !strings.HasPrefix(uri, uriScheme) {
		return ""
	}
	return strings.TrimPrefix(uri, uriScheme)
}

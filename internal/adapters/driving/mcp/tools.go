package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// AddPointInput is the input schema for the add_point tool.
type AddPointInput struct {
	X        float64 `json:"x" jsonschema:"horizontal canvas coordinate"`
	Y        float64 `json:"y" jsonschema:"vertical canvas coordinate"`
	Endpoint bool    `json:"endpoint,omitempty" jsonschema:"whether borders may end at this point"`
}

// PointOutput identifies a border point.
type PointOutput struct {
	Number uint32 `json:"number"`
}

// PointInput selects a border point.
type PointInput struct {
	Number uint32 `json:"number" jsonschema:"border point number"`
}

// BorderInput selects a country border by its two endpoints.
type BorderInput struct {
	From uint32 `json:"from" jsonschema:"lower endpoint number"`
	To   uint32 `json:"to" jsonschema:"higher endpoint number"`
}

// InsertPointInput is the input schema for the insert_point tool.
type InsertPointInput struct {
	From   uint32 `json:"from" jsonschema:"first point of the segment to split"`
	To     uint32 `json:"to" jsonschema:"second point of the segment to split"`
	Number uint32 `json:"number" jsonschema:"existing non-endpoint point to insert"`
}

// CountryInput is the input schema for the add_country tool.
type CountryInput struct {
	Name    string   `json:"name" jsonschema:"unique country name"`
	Borders []string `json:"borders" jsonschema:"borders forming a closed loop, each written a-b"`
}

// NameInput selects a country by name.
type NameInput struct {
	Name string `json:"name" jsonschema:"country name"`
}

// EmptyInput is used by tools without arguments.
type EmptyInput struct{}

// StatusOutput reports the document state after a change.
type StatusOutput struct {
	FileName          string `json:"file_name,omitempty"`
	HasUnsavedChanges bool   `json:"has_unsaved_changes"`
}

// PolygonOutput is one linearised country.
type PolygonOutput struct {
	Name  string           `json:"name"`
	Rings [][]VertexOutput `json:"rings"`
}

// VertexOutput is one polygon corner.
type VertexOutput struct {
	Number uint32  `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// ExportOutput lists the files written by an export.
type ExportOutput struct {
	Files []string `json:"files"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_point",
		Description: "Add a border point to the map and return its number",
	}, s.handleAddPoint)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_point",
		Description: "Remove a border point that no border ends at",
	}, s.handleRemovePoint)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_border",
		Description: "Add a straight country border between two endpoint points",
	}, s.handleAddBorder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "insert_point",
		Description: "Split a border segment at an existing border point",
	}, s.handleInsertPoint)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_border",
		Description: "Remove a country border no country uses",
	}, s.handleRemoveBorder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_country",
		Description: "Add a named country enclosed by a closed loop of borders",
	}, s.handleAddCountry)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_country",
		Description: "Remove a country, keeping its borders",
	}, s.handleRemoveCountry)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "country_polygon",
		Description: "Return the outline of a country as ordered vertices",
	}, s.handleCountryPolygon)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save",
		Description: "Save the map to its file and regenerate its exports",
	}, s.handleSave)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export",
		Description: "Regenerate the map exports without saving",
	}, s.handleExport)
}

func (s *Server) status() StatusOutput {
	return StatusOutput{
		FileName:          s.ports.Document.FileName(),
		HasUnsavedChanges: s.ports.Document.HasUnsavedChanges(),
	}
}

func (s *Server) handleAddPoint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddPointInput,
) (*mcp.CallToolResult, PointOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.ports.Document.AddBorderPoint(input.X, input.Y, input.Endpoint)
	if err != nil {
		return nil, PointOutput{}, toolError("add_point", err)
	}
	return nil, PointOutput{Number: n}, nil
}

func (s *Server) handleRemovePoint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PointInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.RemoveBorderPoint(input.Number); err != nil {
		return nil, StatusOutput{}, toolError("remove_point", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleAddBorder(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BorderInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.AddCountryBorder(domain.NewEdgeKey(input.From, input.To)); err != nil {
		return nil, StatusOutput{}, toolError("add_border", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleInsertPoint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input InsertPointInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	segment := domain.NewEdgeKey(input.From, input.To)
	if err := s.ports.Document.InsertBorderPoint(segment, input.Number); err != nil {
		return nil, StatusOutput{}, toolError("insert_point", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleRemoveBorder(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BorderInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.RemoveCountryBorder(domain.NewEdgeKey(input.From, input.To)); err != nil {
		return nil, StatusOutput{}, toolError("remove_border", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleAddCountry(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CountryInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	keys := make([]domain.EdgeKey, 0, len(input.Borders))
	for _, b := range input.Borders {
		k, err := domain.ParseEdgeKey(b)
		if err != nil {
			return nil, StatusOutput{}, toolError("add_country", err)
		}
		keys = append(keys, k)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.AddCountry(input.Name, keys); err != nil {
		return nil, StatusOutput{}, toolError("add_country", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleRemoveCountry(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NameInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.RemoveCountry(input.Name); err != nil {
		return nil, StatusOutput{}, toolError("remove_country", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleCountryPolygon(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NameInput,
) (*mcp.CallToolResult, PolygonOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poly, err := s.ports.Document.Polygon(input.Name)
	if err != nil {
		return nil, PolygonOutput{}, toolError("country_polygon", err)
	}
	return nil, polygonOutput(poly), nil
}

func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ports.Document.Save(ctx); err != nil {
		return nil, StatusOutput{}, toolError("save", err)
	}
	return nil, s.status(), nil
}

func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.ports.Document.Export(ctx)
	if err != nil {
		return nil, ExportOutput{}, toolError("export", err)
	}
	return nil, ExportOutput{Files: files}, nil
}

func polygonOutput(p domain.Polygon) PolygonOutput {
	out := PolygonOutput{Name: p.Name, Rings: make([][]VertexOutput, len(p.Rings))}
	for i, ring := range p.Rings {
		out.Rings[i] = make([]VertexOutput, len(ring))
		for j, v := range ring {
			out.Rings[i][j] = VertexOutput{Number: v.Number, X: v.X, Y: v.Y}
		}
	}
	return out
}

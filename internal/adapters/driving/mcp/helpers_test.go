package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/services"
)

// newTestServer returns a server over an in-memory document with exports disabled.
func newTestServer(t *testing.T) (*Server, *services.DocumentService) {
	t.Helper()
	settings := domain.DefaultAppSettings()
	settings.Export.Formats = nil

	doc := services.NewDocumentService(memory.NewMapStore(), nil, nil, settings)
	server, err := NewServer(&Ports{
		Document: doc,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	require.NoError(t, err)
	return server, doc
}

// drawTriangle adds three endpoints joined by three borders.
func drawTriangle(t *testing.T, s *Server) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []AddPointInput{
		{X: 0, Y: 0, Endpoint: true},
		{X: 100, Y: 0, Endpoint: true},
		{X: 50, Y: 80, Endpoint: true},
	} {
		_, _, err := s.handleAddPoint(ctx, nil, p)
		require.NoError(t, err)
	}
	for _, b := range []BorderInput{{From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 3}} {
		_, _, err := s.handleAddBorder(ctx, nil, b)
		require.NoError(t, err)
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

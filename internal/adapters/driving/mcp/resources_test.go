package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "points", uri: "bordermap://points", expected: "points"},
		{name: "invalid scheme", uri: "file://points", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resourceName(tt.uri))
		})
	}
}

func TestServer_handleResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)
	drawTriangle(t, server)
	_, _, err := server.handleAddCountry(ctx, nil, CountryInput{Name: "Tri", Borders: []string{"1-2", "2-3", "1-3"}})
	require.NoError(t, err)

	t.Run("points", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://points"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var points []map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &points))
		assert.Len(t, points, 3)
		assert.Equal(t, true, points[0]["endpoint"])
	})

	t.Run("borders", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://borders"))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"endpoints": "1-2"`)
	})

	t.Run("countries", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://countries"))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"name": "Tri"`)
	})

	t.Run("polygons", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://polygons"))
		require.NoError(t, err)

		var polygons []PolygonOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &polygons))
		require.Len(t, polygons, 1)
		assert.Len(t, polygons[0].Rings[0], 3)
	})

	t.Run("summary", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://summary"))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"Countries": 1`)
	})

	t.Run("settings", func(t *testing.T) {
		result, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://settings"))
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, "Radius")
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := server.handleResource(ctx, makeReadResourceRequest("bordermap://rivers"))
		assert.Error(t, err)
	})
}

func TestServer_handleResource_NoSettings(t *testing.T) {
	server, _ := newTestServer(t)
	server.ports.Settings = nil

	_, err := server.handleResource(context.Background(), makeReadResourceRequest("bordermap://settings"))

	assert.Error(t, err)
}

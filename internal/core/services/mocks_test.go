package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// mockExporter records the requests it receives.
type mockExporter struct {
	format   domain.ExportFormat
	requests []driven.ExportRequest
	err      error
}

func (m *mockExporter) Format() domain.ExportFormat { return m.format }

func (m *mockExporter) Export(_ context.Context, req driven.ExportRequest) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, req)
	return []string{req.BasePath + "." + string(m.format)}, nil
}

// mockImageInspector answers from a fixed table of paths.
type mockImageInspector struct {
	images map[string]domain.ImageInfo
	bad    map[string]bool
}

func (m *mockImageInspector) Inspect(path string) (domain.ImageInfo, error) {
	if m.bad[path] {
		return domain.ImageInfo{}, domain.ErrUnsupportedType
	}
	info, ok := m.images[path]
	if !ok {
		return domain.ImageInfo{}, domain.ErrNotFound
	}
	return info, nil
}

// failingMapStore fails every call with err.
type failingMapStore struct {
	err error
}

func (f *failingMapStore) Load(context.Context, string) (*domain.MapSnapshot, error) {
	return nil, f.err
}

func (f *failingMapStore) Save(context.Context, string, *domain.MapSnapshot) error {
	return f.err
}

func (f *failingMapStore) Exists(context.Context, string) (bool, error) {
	return true, nil
}

var errDisk = errors.New("disk full")

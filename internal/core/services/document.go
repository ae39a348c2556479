package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
	"github.com/custodia-labs/bordermap/internal/core/topology"
	"github.com/custodia-labs/bordermap/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService owns one map and the file it is saved to.
type DocumentService struct {
	store     driven.MapStore
	images    driven.ImageInspector
	exporters []driven.Exporter
	settings  domain.AppSettings
	newID     func() string
	log       *logger.Scoped

	m                 *topology.Map
	fileName          string
	hasUnsavedChanges bool
	mayOverwrite      bool
	ignoreChanges     bool
}

// NewDocumentService creates a service holding an empty, unnamed map.
//
// Guard radius and loop policy are read from settings once; they apply to
// every map the service creates or opens. Exporters whose format is not
// listed in settings are never run. images may be nil.
func NewDocumentService(
	store driven.MapStore,
	images driven.ImageInspector,
	exporters []driven.Exporter,
	settings domain.AppSettings,
) *DocumentService {
	s := &DocumentService{
		store:     store,
		images:    images,
		exporters: exporters,
		settings:  settings,
		newID:     func() string { return uuid.New().String() },
		log:       logger.Scope("document"),
	}
	s.m = topology.New(s.newID(), s.mapOptions()...)
	return s
}

func (s *DocumentService) mapOptions() []topology.Option {
	return []topology.Option{
		topology.WithGuardRadius(s.settings.Guard.Radius),
		topology.WithLoopPolicy(s.settings.Countries.LoopPolicy),
	}
}

// changed marks the map as modified when a mutation succeeded.
func (s *DocumentService) changed(err error) error {
	if err == nil {
		s.hasUnsavedChanges = true
	}
	return err
}

// ==================== Points ====================

// AddBorderPoint allocates a new point and returns its number.
func (s *DocumentService) AddBorderPoint(x, y float64, isEndpoint bool) (uint32, error) {
	n, err := s.m.AddBorderPoint(x, y, isEndpoint)
	return n, s.changed(err)
}

// RemoveBorderPoint deletes a point no border ends at.
func (s *DocumentService) RemoveBorderPoint(n uint32) error {
	return s.changed(s.m.RemoveBorderPoint(n))
}

// BorderPoints returns all points in insertion order.
func (s *DocumentService) BorderPoints() []domain.BorderPoint {
	return s.m.BorderPoints()
}

// ==================== Borders ====================

// AddCountryBorder creates a border between two endpoints.
func (s *DocumentService) AddCountryBorder(endpoints domain.EdgeKey) error {
	return s.changed(s.m.AddCountryBorder(endpoints))
}

// InsertBorderPoint splits the part spanning segment at point n.
func (s *DocumentService) InsertBorderPoint(segment domain.EdgeKey, n uint32) error {
	return s.changed(s.m.InsertBorderPoint(segment, n))
}

// RemoveCountryBorder deletes an unused border and its interior points.
func (s *DocumentService) RemoveCountryBorder(endpoints domain.EdgeKey) error {
	return s.changed(s.m.RemoveCountryBorder(endpoints))
}

// CountryBorders returns all borders in creation order.
func (s *DocumentService) CountryBorders() []domain.CountryBorder {
	return s.m.CountryBorders()
}

// ==================== Countries ====================

// AddCountry stores a named closed loop of borders.
func (s *DocumentService) AddCountry(name string, borders []domain.EdgeKey) error {
	return s.changed(s.m.AddCountry(name, borders))
}

// RemoveCountry deletes a country. Its borders are kept.
func (s *DocumentService) RemoveCountry(name string) error {
	return s.changed(s.m.RemoveCountry(name))
}

// Countries returns all countries in creation order.
func (s *DocumentService) Countries() []domain.Country {
	return s.m.Countries()
}

// Polygon linearises one country.
func (s *DocumentService) Polygon(name string) (domain.Polygon, error) {
	return s.m.Polygon(name)
}

// Polygons linearises every country.
func (s *DocumentService) Polygons() ([]domain.Polygon, error) {
	return s.m.Polygons()
}

// ==================== Reference image ====================

// ReferenceImage returns the path of the image being traced.
func (s *DocumentService) ReferenceImage() string {
	return s.m.ReferenceImage()
}

// SetReferenceImage validates and records the image being traced.
func (s *DocumentService) SetReferenceImage(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("reference image path is empty: %w", domain.ErrInvalidInput)
	}

	if s.images != nil {
		info, err := s.images.Inspect(path)
		if errors.Is(err, domain.ErrUnsupportedType) {
			return fmt.Errorf("reference image %s: %v: %w", path, err, domain.ErrInvalidInput)
		}
		if err != nil {
			return fmt.Errorf("reference image %s: %w", path, err)
		}
		s.log.Debug("reference image %s is %s %dx%d", path, info.Format, info.Width, info.Height)
	}

	s.m.SetReferenceImage(path)
	s.hasUnsavedChanges = true
	return nil
}

// Summary returns counts for display.
func (s *DocumentService) Summary() domain.MapSummary {
	return s.m.Summary()
}

// ==================== Document lifecycle ====================

// FileName returns the current document path.
func (s *DocumentService) FileName() string {
	return s.fileName
}

// SetFileName changes the document path.
func (s *DocumentService) SetFileName(name string) {
	s.fileName = name
	s.hasUnsavedChanges = true
	s.mayOverwrite = false
}

// SetMayOverwrite permits or forbids Save replacing an existing file.
func (s *DocumentService) SetMayOverwrite(allow bool) {
	s.mayOverwrite = allow
}

// SetIgnoreChanges lets Open and New discard unsaved changes.
func (s *DocumentService) SetIgnoreChanges(ignore bool) {
	s.ignoreChanges = ignore
}

// HasUnsavedChanges reports whether the map changed since the last save or open.
func (s *DocumentService) HasUnsavedChanges() bool {
	return s.hasUnsavedChanges
}

// FileExists reports whether the current document path exists.
// Lookup errors count as absent.
func (s *DocumentService) FileExists(ctx context.Context) bool {
	if s.fileName == "" {
		return false
	}
	exists, err := s.store.Exists(ctx, s.fileName)
	if err != nil {
		s.log.Debug("exists check for %s failed: %v", s.fileName, err)
		return false
	}
	return exists
}

// State returns all lifecycle flags.
func (s *DocumentService) State(ctx context.Context) domain.DocumentState {
	return domain.DocumentState{
		FileName:          s.fileName,
		HasUnsavedChanges: s.hasUnsavedChanges,
		MayOverwrite:      s.mayOverwrite,
		IgnoreChanges:     s.ignoreChanges,
		FileExists:        s.FileExists(ctx),
	}
}

// Save writes the document, then regenerates its exports.
//
// The lifecycle flags are reset as soon as the document is written, so an
// export failure is reported without marking the document unsaved.
func (s *DocumentService) Save(ctx context.Context) error {
	if s.fileName == "" {
		return fmt.Errorf("document has no file name: %w", domain.ErrPreconditionFailed)
	}

	exists, err := s.store.Exists(ctx, s.fileName)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.fileName, err)
	}
	if exists && !s.mayOverwrite {
		return fmt.Errorf("%s exists and may not be overwritten: %w", s.fileName, domain.ErrPreconditionFailed)
	}

	snap := s.m.Snapshot()
	if err := s.store.Save(ctx, s.fileName, &snap); err != nil {
		return fmt.Errorf("save %s: %w", s.fileName, err)
	}

	s.hasUnsavedChanges = false
	s.ignoreChanges = false
	s.mayOverwrite = true
	s.log.Info("saved %s (%d points, %d borders, %d countries)",
		s.fileName, len(snap.Points), len(snap.Borders), len(snap.Countries))

	if _, err := s.export(ctx, snap); err != nil {
		return fmt.Errorf("save %s: %w", s.fileName, err)
	}
	return nil
}

// Open replaces the map with the document at path.
func (s *DocumentService) Open(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("open: empty path: %w", domain.ErrInvalidInput)
	}
	if err := s.guardUnsaved("open"); err != nil {
		return err
	}

	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("open %s: %w", path, domain.ErrNotFound)
	}

	snap, err := s.store.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if snap.DocumentID == "" {
		snap.DocumentID = s.newID()
	}

	m, err := topology.Restore(*snap, s.mapOptions()...)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	s.m = m
	s.fileName = path
	s.mayOverwrite = true
	s.hasUnsavedChanges = false
	s.ignoreChanges = false
	s.log.Info("opened %s (%d points, %d borders, %d countries)",
		path, len(snap.Points), len(snap.Borders), len(snap.Countries))
	return nil
}

// New discards the map and starts an empty, unnamed one.
func (s *DocumentService) New() error {
	if err := s.guardUnsaved("new"); err != nil {
		return err
	}

	s.m = topology.New(s.newID(), s.mapOptions()...)
	s.fileName = ""
	s.hasUnsavedChanges = false
	s.mayOverwrite = false
	s.ignoreChanges = false
	s.log.Info("new document %s", s.m.DocumentID())
	return nil
}

// Export regenerates the derived artifacts without saving.
func (s *DocumentService) Export(ctx context.Context) ([]string, error) {
	if s.fileName == "" {
		return nil, fmt.Errorf("document has no file name: %w", domain.ErrPreconditionFailed)
	}
	return s.export(ctx, s.m.Snapshot())
}

func (s *DocumentService) guardUnsaved(op string) error {
	if s.hasUnsavedChanges && !s.ignoreChanges {
		return fmt.Errorf("%s: document has unsaved changes: %w", op, domain.ErrPreconditionFailed)
	}
	return nil
}

// export runs every configured exporter in settings order.
func (s *DocumentService) export(ctx context.Context, snap domain.MapSnapshot) ([]string, error) {
	if len(s.settings.Export.Formats) == 0 || len(s.exporters) == 0 {
		return nil, nil
	}

	polygons, err := s.m.Polygons()
	if err != nil {
		return nil, fmt.Errorf("linearise countries: %w", err)
	}

	req := driven.ExportRequest{
		BasePath: strings.TrimSuffix(s.fileName, filepath.Ext(s.fileName)),
		Snapshot: snap,
		Polygons: polygons,
		Seed:     s.settings.Export.Seed,
	}

	var written []string
	for _, format := range s.settings.Export.Formats {
		exp := s.exporter(format)
		if exp == nil {
			return written, fmt.Errorf("no exporter for %q: %w", format, domain.ErrUnsupportedType)
		}
		paths, err := exp.Export(ctx, req)
		if err != nil {
			return written, fmt.Errorf("export %s: %w", format, err)
		}
		written = append(written, paths...)
	}

	s.log.Info("exported %d file(s) for %s", len(written), s.fileName)
	return written, nil
}

func (s *DocumentService) exporter(format domain.ExportFormat) driven.Exporter {
	for _, e := range s.exporters {
		if e.Format() == format {
			return e
		}
	}
	return nil
}

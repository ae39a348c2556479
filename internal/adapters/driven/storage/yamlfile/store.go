// Package yamlfile stores map documents as hand-editable YAML.
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MapStore = (*Store)(nil)

type yamlMap struct {
	DocumentID     string        `yaml:"document_id,omitempty"`
	ReferenceImage string        `yaml:"reference_image,omitempty"`
	Points         []yamlPoint   `yaml:"points"`
	Borders        []yamlBorder  `yaml:"borders"`
	Countries      []yamlCountry `yaml:"countries"`
}

type yamlPoint struct {
	Number   uint32  `yaml:"number"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Endpoint bool    `yaml:"endpoint,omitempty"`
}

type yamlBorder struct {
	Endpoints []uint32   `yaml:"endpoints,flow"`
	Parts     [][]uint32 `yaml:"parts,flow"`
}

type yamlCountry struct {
	Name    string     `yaml:"name"`
	Borders [][]uint32 `yaml:"borders,flow"`
}

// Store reads and writes YAML map documents.
type Store struct{}

// NewStore creates a YAML map store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the document at path.
func (s *Store) Load(_ context.Context, path string) (*domain.MapSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc yamlMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", path, err, domain.ErrCorruptData)
	}
	return doc.snapshot()
}

// Save writes the document to path, creating parent directories.
func (s *Store) Save(_ context.Context, path string, snap *domain.MapSnapshot) error {
	data, err := yaml.Marshal(fromSnapshot(snap))
	if err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file is present at path.
func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func fromSnapshot(snap *domain.MapSnapshot) yamlMap {
	doc := yamlMap{
		DocumentID:     snap.DocumentID,
		ReferenceImage: snap.ReferenceImage,
		Points:         []yamlPoint{},
		Borders:        []yamlBorder{},
		Countries:      []yamlCountry{},
	}
	for _, p := range snap.Points {
		doc.Points = append(doc.Points, yamlPoint{Number: p.Number, X: p.X, Y: p.Y, Endpoint: p.IsEndpoint})
	}
	for _, b := range snap.Borders {
		yb := yamlBorder{Endpoints: []uint32{b.Endpoints[0], b.Endpoints[1]}}
		for _, part := range b.Parts {
			yb.Parts = append(yb.Parts, []uint32{part.PointNumbers[0], part.PointNumbers[1]})
		}
		doc.Borders = append(doc.Borders, yb)
	}
	for _, c := range snap.Countries {
		yc := yamlCountry{Name: c.Name}
		for _, k := range c.Borders {
			yc.Borders = append(yc.Borders, []uint32{k[0], k[1]})
		}
		doc.Countries = append(doc.Countries, yc)
	}
	return doc
}

func (doc *yamlMap) snapshot() (*domain.MapSnapshot, error) {
	snap := &domain.MapSnapshot{
		DocumentID:     doc.DocumentID,
		ReferenceImage: doc.ReferenceImage,
	}
	for _, p := range doc.Points {
		snap.Points = append(snap.Points, domain.BorderPoint{Number: p.Number, X: p.X, Y: p.Y, IsEndpoint: p.Endpoint})
	}
	for i, b := range doc.Borders {
		endpoints, err := pair(b.Endpoints)
		if err != nil {
			return nil, fmt.Errorf("border %d: %w", i, err)
		}
		border := domain.CountryBorder{Endpoints: endpoints}
		for _, nums := range b.Parts {
			key, err := pair(nums)
			if err != nil {
				return nil, fmt.Errorf("border %s: %w", endpoints, err)
			}
			border.Parts = append(border.Parts, domain.BorderPart{PointNumbers: key})
		}
		snap.Borders = append(snap.Borders, border)
	}
	for _, c := range doc.Countries {
		country := domain.Country{Name: c.Name}
		for _, nums := range c.Borders {
			key, err := pair(nums)
			if err != nil {
				return nil, fmt.Errorf("country %q: %w", c.Name, err)
			}
			country.Borders = append(country.Borders, key)
		}
		snap.Countries = append(snap.Countries, country)
	}
	return snap, nil
}

func pair(nums []uint32) (domain.EdgeKey, error) {
	if len(nums) != 2 {
		return domain.EdgeKey{}, fmt.Errorf("expected 2 point numbers, got %d: %w", len(nums), domain.ErrCorruptData)
	}
	return domain.NewEdgeKey(nums[0], nums[1]), nil
}

package xmlfile

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MapStore = (*Store)(nil)

type xmlMap struct {
	XMLName        xml.Name           `xml:"Map"`
	DocumentID     string             `xml:"DocumentId,omitempty"`
	OriginalMap    string             `xml:"OriginalMap,omitempty"`
	BorderPoints   []xmlBorderPoint   `xml:"BorderPoints>BorderPoint"`
	CountryBorders []xmlCountryBorder `xml:"CountryBorders>CountryBorder"`
	Countries      []xmlCountry       `xml:"Countries>Country"`
}

type xmlBorderPoint struct {
	X          float64 `xml:"X"`
	Y          float64 `xml:"Y"`
	Number     uint32  `xml:"Number"`
	IsEndPoint bool    `xml:"IsEndPoint"`
}

type xmlCountryBorder struct {
	Endpoints []uint32        `xml:"BorderEndPointNumbers>int"`
	Parts     []xmlBorderPart `xml:"BorderParts>BorderPart"`
}

type xmlBorderPart struct {
	Points []uint32 `xml:"BorderPointNumbers>int"`
}

type xmlCountry struct {
	Borders []xmlIntArray `xml:"CountriesBorderEndPointNumbers>ArrayOfInt"`
	Name    string        `xml:"Name"`
}

type xmlIntArray struct {
	Ints []uint32 `xml:"int"`
}

// Store reads and writes XML map documents.
type Store struct{}

// NewStore creates an XML map store.
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
	return Decode(data)
}

// Save writes the document to path, creating parent directories.
func (s *Store) Save(_ context.Context, path string, snap *domain.MapSnapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
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

// Encode renders a snapshot as an indented XML document.
func Encode(snap *domain.MapSnapshot) ([]byte, error) {
	doc := xmlMap{
		DocumentID:  snap.DocumentID,
		OriginalMap: snap.ReferenceImage,
	}
	for _, p := range snap.Points {
		doc.BorderPoints = append(doc.BorderPoints, xmlBorderPoint{
			X: p.X, Y: p.Y, Number: p.Number, IsEndPoint: p.IsEndpoint,
		})
	}
	for _, b := range snap.Borders {
		xb := xmlCountryBorder{Endpoints: []uint32{b.Endpoints[0], b.Endpoints[1]}}
		for _, part := range b.Parts {
			xb.Parts = append(xb.Parts, xmlBorderPart{
				Points: []uint32{part.PointNumbers[0], part.PointNumbers[1]},
			})
		}
		doc.CountryBorders = append(doc.CountryBorders, xb)
	}
	for _, c := range snap.Countries {
		xc := xmlCountry{Name: c.Name}
		for _, k := range c.Borders {
			xc.Borders = append(xc.Borders, xmlIntArray{Ints: []uint32{k[0], k[1]}})
		}
		doc.Countries = append(doc.Countries, xc)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding map: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Decode parses an XML document. Malformed XML and point pairs that do not
// hold exactly two numbers fail with domain.ErrCorruptData.
func Decode(data []byte) (*domain.MapSnapshot, error) {
	var doc xmlMap
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding map: %v: %w", err, domain.ErrCorruptData)
	}

	snap := &domain.MapSnapshot{
		DocumentID:     doc.DocumentID,
		ReferenceImage: doc.OriginalMap,
	}
	for _, p := range doc.BorderPoints {
		snap.Points = append(snap.Points, domain.BorderPoint{
			Number: p.Number, X: p.X, Y: p.Y, IsEndpoint: p.IsEndPoint,
		})
	}
	for i, b := range doc.CountryBorders {
		endpoints, err := pair(b.Endpoints)
		if err != nil {
			return nil, fmt.Errorf("country border %d: %w", i, err)
		}
		border := domain.CountryBorder{Endpoints: endpoints}
		for j, part := range b.Parts {
			key, err := pair(part.Points)
			if err != nil {
				return nil, fmt.Errorf("country border %s part %d: %w", endpoints, j, err)
			}
			border.Parts = append(border.Parts, domain.BorderPart{PointNumbers: key})
		}
		snap.Borders = append(snap.Borders, border)
	}
	for _, c := range doc.Countries {
		country := domain.Country{Name: c.Name}
		for _, arr := range c.Borders {
			key, err := pair(arr.Ints)
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

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BorderPoint is a numbered coordinate on the canvas.
// Endpoint-ness is fixed when the point is created.
type BorderPoint struct {
	// Number is the unique identifier allocated by the point store.
	Number uint32

	// X is the horizontal canvas coordinate.
	X float64

	// Y is the vertical canvas coordinate.
	Y float64

	// IsEndpoint marks points that may terminate a country border.
	IsEndpoint bool
}

// EdgeKey identifies a segment or a country border by its two point numbers.
// Canonical keys are strictly ascending.
type EdgeKey [2]uint32

// NewEdgeKey returns the key for a and b without reordering them.
func NewEdgeKey(a, b uint32) EdgeKey {
	return EdgeKey{a, b}
}

// Canonical reports whether the key is strictly ascending.
func (k EdgeKey) Canonical() bool {
	return k[0] < k[1]
}

// Contains reports whether n is one of the key's point numbers.
func (k EdgeKey) Contains(n uint32) bool {
	return k[0] == n || k[1] == n
}

// Other returns the number at the opposite end from n.
// The result is only meaningful when Contains(n) is true.
func (k EdgeKey) Other(n uint32) uint32 {
	if k[0] == n {
		return k[1]
	}
	return k[0]
}

// String renders the key as "a-b".
func (k EdgeKey) String() string {
	return fmt.Sprintf("%d-%d", k[0], k[1])
}

// ParseEdgeKey parses the "a-b" form produced by String.
func ParseEdgeKey(s string) (EdgeKey, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return EdgeKey{}, fmt.Errorf("edge %q must look like a-b: %w", s, ErrInvalidInput)
	}
	a, err := strconv.ParseUint(left, 10, 32)
	if err != nil {
		return EdgeKey{}, fmt.Errorf("edge %q: %w", s, ErrInvalidInput)
	}
	b, err := strconv.ParseUint(right, 10, 32)
	if err != nil {
		return EdgeKey{}, fmt.Errorf("edge %q: %w", s, ErrInvalidInput)
	}
	return EdgeKey{uint32(a), uint32(b)}, nil
}

// BorderPart is one straight segment of a country border.
type BorderPart struct {
	// PointNumbers are the two border points the segment joins.
	PointNumbers EdgeKey
}

// CountryBorder is a border between two endpoint points.
// Parts keep their creation order; the chain is formed by shared point
// numbers, not by slice position.
type CountryBorder struct {
	// Endpoints are the two endpoint numbers, ascending.
	Endpoints EdgeKey

	// Parts are the segments that make up the border.
	Parts []BorderPart
}

// InteriorPoints returns the point numbers used by the parts that are not
// one of the two endpoints, in first-seen order.
func (b *CountryBorder) InteriorPoints() []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	for _, p := range b.Parts {
		for _, n := range p.PointNumbers {
			if b.Endpoints.Contains(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Uses reports whether any part of the border references point n.
func (b *CountryBorder) Uses(n uint32) bool {
	for _, p := range b.Parts {
		if p.PointNumbers.Contains(n) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the border.
func (b *CountryBorder) Clone() CountryBorder {
	parts := make([]BorderPart, len(b.Parts))
	copy(parts, b.Parts)
	return CountryBorder{Endpoints: b.Endpoints, Parts: parts}
}

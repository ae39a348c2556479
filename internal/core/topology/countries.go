package topology

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// AddCountry stores a named country made of existing borders whose
// endpoints form closed loops. Under the strict loop policy the borders must
// form exactly one loop.
func (m *Map) AddCountry(name string, borders []domain.EdgeKey) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("country name is empty: %w", domain.ErrInvalidInput)
	}
	if _, ok := m.countries[name]; ok {
		return fmt.Errorf("country %q: %w", name, domain.ErrAlreadyExists)
	}
	if len(borders) == 0 {
		return fmt.Errorf("country %q has no borders: %w", name, domain.ErrInvalidInput)
	}

	seen := make(map[domain.EdgeKey]bool, len(borders))
	for _, key := range borders {
		if seen[key] {
			return fmt.Errorf("country %q lists border %s twice: %w", name, key, domain.ErrInvalidInput)
		}
		seen[key] = true
	}

	for _, key := range borders {
		if _, ok := m.borders[key]; !ok {
			return fmt.Errorf("country %q uses border %s: %w", name, key, domain.ErrNotFound)
		}
	}

	if !IsClosed(borders) {
		return fmt.Errorf("borders of country %q are not a closed shape: %w", name, domain.ErrInvalidInput)
	}
	if m.loopPolicy == domain.LoopPolicyStrict {
		if n := CountLoops(borders); n != 1 {
			return fmt.Errorf("borders of country %q form %d separate loops: %w", name, n, domain.ErrInvalidInput)
		}
	}

	for _, other := range m.countryOrder {
		if m.countries[other].SameBorders(borders) {
			return fmt.Errorf("country %q already has these borders: %w", other, domain.ErrAlreadyExists)
		}
	}

	keys := make([]domain.EdgeKey, len(borders))
	copy(keys, borders)
	m.countries[name] = &domain.Country{Name: name, Borders: keys}
	m.countryOrder = append(m.countryOrder, name)

	m.log.Debug("country %q added with %d borders", name, len(keys))
	return nil
}

// RemoveCountry deletes a country. Its borders are left in place.
func (m *Map) RemoveCountry(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("country name is empty: %w", domain.ErrNotFound)
	}
	if _, ok := m.countries[name]; !ok {
		return fmt.Errorf("country %q: %w", name, domain.ErrNotFound)
	}

	delete(m.countries, name)
	for i, n := range m.countryOrder {
		if n == name {
			m.countryOrder = append(m.countryOrder[:i], m.countryOrder[i+1:]...)
			break
		}
	}

	m.log.Debug("country %q removed", name)
	return nil
}

// Country returns the country with the given name.
func (m *Map) Country(name string) (domain.Country, bool) {
	c, ok := m.countries[name]
	if !ok {
		return domain.Country{}, false
	}
	return c.Clone(), true
}

// Countries returns every country in creation order.
func (m *Map) Countries() []domain.Country {
	out := make([]domain.Country, 0, len(m.countryOrder))
	for _, name := range m.countryOrder {
		out = append(out, m.countries[name].Clone())
	}
	return out
}

package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

func TestAddCountry_ClosedLoop(t *testing.T) {
	t.Run("triangle is accepted", func(t *testing.T) {
		m := New("doc")
		keys := triangle(t, m)

		require.NoError(t, m.AddCountry("Tri", keys))

		c, ok := m.Country("Tri")
		require.True(t, ok)
		assert.Equal(t, keys, c.Borders)
	})

	t.Run("open path is rejected", func(t *testing.T) {
		m := New("doc")
		keys := triangle(t, m)

		err := m.AddCountry("Open", keys[:2])

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, m.Countries())
	})
}

func TestAddCountry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		country string
		borders func(keys []domain.EdgeKey) []domain.EdgeKey
		want    error
	}{
		{
			name:    "empty name",
			country: "",
			borders: func(keys []domain.EdgeKey) []domain.EdgeKey { return keys },
			want:    domain.ErrInvalidInput,
		},
		{
			name:    "blank name",
			country: "   ",
			borders: func(keys []domain.EdgeKey) []domain.EdgeKey { return keys },
			want:    domain.ErrInvalidInput,
		},
		{
			name:    "no borders",
			country: "Empty",
			borders: func([]domain.EdgeKey) []domain.EdgeKey { return nil },
			want:    domain.ErrInvalidInput,
		},
		{
			name:    "unknown border",
			country: "Ghost",
			borders: func(keys []domain.EdgeKey) []domain.EdgeKey {
				return append([]domain.EdgeKey{{1, 9}}, keys...)
			},
			want: domain.ErrNotFound,
		},
		{
			name:    "border listed twice",
			country: "Twice",
			borders: func(keys []domain.EdgeKey) []domain.EdgeKey {
				return []domain.EdgeKey{keys[0], keys[0]}
			},
			want: domain.ErrInvalidInput,
		},
		{
			name:    "descending pair does not match a border",
			country: "Backwards",
			borders: func([]domain.EdgeKey) []domain.EdgeKey {
				return []domain.EdgeKey{{2, 1}, {2, 3}, {1, 3}}
			},
			want: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("doc")
			keys := triangle(t, m)

			err := m.AddCountry(tt.country, tt.borders(keys))

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, m.Countries())
		})
	}
}

func TestAddCountry_Duplicates(t *testing.T) {
	m := New("doc")
	keys := triangle(t, m)
	require.NoError(t, m.AddCountry("Tri", keys))

	t.Run("same name", func(t *testing.T) {
		err := m.AddCountry("Tri", keys)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("same borders in another order", func(t *testing.T) {
		err := m.AddCountry("Other", []domain.EdgeKey{keys[2], keys[0], keys[1]})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	assert.Len(t, m.Countries(), 1)
}

func TestAddCountry_LoopPolicy(t *testing.T) {
	twoSquares := func(t *testing.T, m *Map) []domain.EdgeKey {
		a := square(t, m, 0, 0, 10)
		b := square(t, m, 100, 100, 10)
		return append(a, b...)
	}

	t.Run("first accepts disjoint loops and exports one", func(t *testing.T) {
		m := New("doc")
		keys := twoSquares(t, m)

		require.NoError(t, m.AddCountry("Islands", keys))

		poly, err := m.Polygon("Islands")
		require.NoError(t, err)
		require.Len(t, poly.Rings, 1)
		assert.Len(t, poly.Rings[0], 4)
	})

	t.Run("strict rejects disjoint loops", func(t *testing.T) {
		m := New("doc", WithLoopPolicy(domain.LoopPolicyStrict))
		keys := twoSquares(t, m)

		err := m.AddCountry("Islands", keys)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NoError(t, m.AddCountry("Mainland", keys[:4]))
	})

	t.Run("all exports every loop", func(t *testing.T) {
		m := New("doc", WithLoopPolicy(domain.LoopPolicyAll))
		keys := twoSquares(t, m)

		require.NoError(t, m.AddCountry("Islands", keys))

		poly, err := m.Polygon("Islands")
		require.NoError(t, err)
		require.Len(t, poly.Rings, 2)
		assert.Equal(t, uint32(1), poly.Rings[0][0].Number)
		assert.Equal(t, uint32(5), poly.Rings[1][0].Number)
	})

	t.Run("unknown policy keeps the default", func(t *testing.T) {
		m := New("doc", WithLoopPolicy("loose"))
		assert.Equal(t, domain.LoopPolicyFirst, m.LoopPolicy())
	})
}

func TestRemoveCountry(t *testing.T) {
	m := New("doc")
	keys := triangle(t, m)
	require.NoError(t, m.AddCountry("Tri", keys))

	assert.ErrorIs(t, m.RemoveCountry(""), domain.ErrNotFound)
	assert.ErrorIs(t, m.RemoveCountry("   "), domain.ErrNotFound)
	assert.ErrorIs(t, m.RemoveCountry("Nowhere"), domain.ErrNotFound)

	require.NoError(t, m.RemoveCountry("Tri"))

	assert.Empty(t, m.Countries())
	assert.Len(t, m.CountryBorders(), 3, "borders are not touched")
	assert.NoError(t, m.RemoveCountryBorder(keys[0]), "border no longer in use")
}

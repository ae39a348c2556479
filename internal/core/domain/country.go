package domain

// Country is a named closed shape built from country borders.
type Country struct {
	// Name is unique across the map.
	Name string

	// Borders lists the endpoint pairs of the borders forming the country,
	// in the order they were supplied.
	Borders []EdgeKey
}

// Clone returns a deep copy of the country.
func (c *Country) Clone() Country {
	borders := make([]EdgeKey, len(c.Borders))
	copy(borders, c.Borders)
	return Country{Name: c.Name, Borders: borders}
}

// SameBorders reports whether c and other reference the same set of borders,
// regardless of order.
func (c *Country) SameBorders(other []EdgeKey) bool {
	if len(c.Borders) != len(other) {
		return false
	}
	set := make(map[EdgeKey]int, len(c.Borders))
	for _, k := range c.Borders {
		set[k]++
	}
	for _, k := range other {
		if set[k] == 0 {
			return false
		}
		set[k]--
	}
	return true
}

// References reports whether the country uses the border with the given key.
func (c *Country) References(key EdgeKey) bool {
	for _, k := range c.Borders {
		if k == key {
			return true
		}
	}
	return false
}

// Vertex is one corner of a linearised country outline.
type Vertex struct {
	Number uint32
	X      float64
	Y      float64
}

// Ring is a closed outline; the last vertex connects back to the first.
type Ring []Vertex

// Polygon is the export form of one country.
type Polygon struct {
	// Name is the country name.
	Name string

	// Rings holds one outline per exported loop component.
	Rings []Ring
}

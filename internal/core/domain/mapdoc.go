package domain

// MapSnapshot is the persisted shape of a map document.
// Stores must reproduce it exactly, including slice order.
type MapSnapshot struct {
	// DocumentID identifies the document across saves.
	DocumentID string

	// ReferenceImage is the optional path of the image being traced.
	ReferenceImage string

	// Points are all border points in store order.
	Points []BorderPoint

	// Borders are all country borders in creation order.
	Borders []CountryBorder

	// Countries are all countries in creation order.
	Countries []Country
}

// IsEmpty reports whether the snapshot holds no geometry and no countries.
func (s *MapSnapshot) IsEmpty() bool {
	return len(s.Points) == 0 && len(s.Borders) == 0 && len(s.Countries) == 0
}

// Clone returns a deep copy of the snapshot.
func (s *MapSnapshot) Clone() MapSnapshot {
	out := MapSnapshot{
		DocumentID:     s.DocumentID,
		ReferenceImage: s.ReferenceImage,
		Points:         append([]BorderPoint(nil), s.Points...),
	}
	for _, b := range s.Borders {
		out.Borders = append(out.Borders, b.Clone())
	}
	for _, c := range s.Countries {
		out.Countries = append(out.Countries, c.Clone())
	}
	return out
}

// DocumentState reports the lifecycle flags of the open document.
type DocumentState struct {
	// FileName is the current document path, empty for an unnamed map.
	FileName string

	// HasUnsavedChanges is true after any mutation since the last save or open.
	HasUnsavedChanges bool

	// MayOverwrite permits Save to replace an existing file.
	MayOverwrite bool

	// IgnoreChanges lets Open and New discard unsaved changes.
	IgnoreChanges bool

	// FileExists reports whether FileName currently exists on disk.
	FileExists bool
}

// MapSummary gives counts for display.
type MapSummary struct {
	DocumentID     string
	ReferenceImage string
	Points         int
	Endpoints      int
	Borders        int
	Parts          int
	Countries      int
}

// ImageInfo describes a decoded reference image header.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// Package domain defines the core entities of a digitised border map.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BorderPoint: A numbered 2D coordinate on the canvas
//   - BorderPart: One straight segment between two border points
//   - CountryBorder: A border between two endpoints, possibly subdivided
//   - Country: A named closed shape made of country borders
//   - MapSnapshot: The persisted shape of a whole map document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

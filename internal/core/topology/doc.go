// Package topology is the border engine: a graph of numbered border points,
// country borders subdivided into border parts, and countries built from
// closed loops of borders.
//
// A Map owns all three and keeps them free of accidental self-intersection.
// Every mutation validates completely before changing anything, so a failed
// call leaves the Map as it was.
//
// Map is not safe for concurrent mutation; callers serialise access.
package topology

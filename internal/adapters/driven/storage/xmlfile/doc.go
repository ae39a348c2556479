// Package xmlfile stores map documents as XML.
//
// The layout follows the drawing tool's legacy file format: BorderPoints,
// CountryBorders and Countries sequences under a Map root, with point pairs
// written as lists of <int> elements. Two elements are added, DocumentId and
// OriginalMap, both optional on read.
package xmlfile

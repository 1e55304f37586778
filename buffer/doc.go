// Package buffer implements the pure document model for a journal entry.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open spans in document coordinates: [Start, End).
package buffer

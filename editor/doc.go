// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware soft wrapping, and inline suggestions. A suggestion is drawn
// as dimmed ghost text after the end of the document and revealed one
// grapheme per tick. Tab accepts it; any other key dismisses it.
package editor

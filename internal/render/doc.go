// Package render draws hint overlays onto a terminal screen.
//
// It provides a small style model (Color, Style, Cell), a tcell-backed
// screen that translates terminal key events into key.Event values, a
// compositor that paints hint codes over registered targets, and a
// JSON theme loader for the overlay styles.
package render

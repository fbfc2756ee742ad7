package render

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lodestar-tui/lodestar/internal/hint"
	"github.com/lodestar-tui/lodestar/internal/target"
)

// Overlay paints hint codes over registered targets. Codes whose
// prefix no longer matches the typed buffer are dropped from the
// frame; surviving codes render the typed part in the theme's Typed
// style and the remainder in Pending.
type Overlay struct {
	theme Theme
}

// NewOverlay creates an overlay compositor with the given theme.
func NewOverlay(theme Theme) *Overlay {
	return &Overlay{theme: theme}
}

// Theme returns the active theme.
func (o *Overlay) Theme() Theme {
	return o.theme
}

// SetTheme replaces the active theme.
func (o *Overlay) SetTheme(theme Theme) {
	o.theme = theme
}

// Draw composes the hint layer onto the surface. The prefix is the
// typed buffer so far, and truncated is the number of candidates that
// received no code this session.
func (o *Overlay) Draw(s Surface, reg *target.Registry, set *hint.HintSet, prefix string, truncated int) {
	if set == nil || set.IsEmpty() {
		return
	}

	for _, entry := range set.WithPrefix(prefix) {
		tgt, ok := reg.ByID(entry.TargetID)
		if !ok {
			// Target vanished in a frame rebuild. The code stays
			// matchable; there is just nothing to anchor it to.
			continue
		}
		o.drawCode(s, tgt.Rect, entry.Code, len(prefix))
	}

	if truncated > 0 {
		o.drawBadge(s, truncated)
	}
}

// drawCode paints one hint code starting at the rect origin, clipped
// to the surface.
func (o *Overlay) drawCode(s Surface, r target.Rect, code string, typed int) {
	w, h := s.Size()
	if r.Y < 0 || r.Y >= h {
		return
	}

	x := r.X
	for i, ch := range code {
		if x < 0 || x >= w {
			x++
			continue
		}
		style := o.theme.Pending
		if i < typed {
			style = o.theme.Typed
		}
		s.SetCell(x, r.Y, Cell{Rune: ch, Style: style})
		x++
	}
}

// drawBadge paints the "+N" truncation badge in the top-right corner.
func (o *Overlay) drawBadge(s Surface, truncated int) {
	label := fmt.Sprintf("+%d", truncated)
	w, _ := s.Size()

	x := w - uniseg.StringWidth(label)
	if x < 0 {
		x = 0
	}
	for _, ch := range label {
		if x >= w {
			break
		}
		s.SetCell(x, 0, Cell{Rune: ch, Style: o.theme.Badge})
		x++
	}
}

// HighlightTarget fills a target's rect with the theme's highlight
// style. Degenerate rects are skipped.
func (o *Overlay) HighlightTarget(s Surface, r target.Rect) {
	if r.IsDegenerate() {
		return
	}
	w, h := s.Size()
	for y := r.Y; y < r.Y+r.Height && y < h; y++ {
		for x := r.X; x < r.X+r.Width && x < w; x++ {
			if x >= 0 && y >= 0 {
				s.SetCell(x, y, Cell{Rune: ' ', Style: o.theme.Highlight})
			}
		}
	}
}

// Grid is an in-memory Surface used by tests and headless hosts.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a cleared grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([]Cell, width*height)
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// SetCell places a cell, ignoring out-of-bounds coordinates.
func (g *Grid) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = cell
}

// At returns the cell at (x, y). Out-of-bounds returns an empty cell.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{Rune: ' ', Style: DefaultStyle()}
	}
	return g.cells[y*g.width+x]
}

// Clear resets every cell to a blank with the default style.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Style: DefaultStyle()}
	}
}

// Row returns the runes of row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < g.width; x++ {
		b.WriteRune(g.cells[y*g.width+x].Rune)
	}
	return b.String()
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lodestar-tui/lodestar/internal/input/key"
)

// Surface is a drawing target for the overlay compositor. Terminal
// implements it for real screens; tests supply an in-memory grid.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell places a cell at (x, y). Out-of-bounds calls are
	// ignored.
	SetCell(x, y int, cell Cell)
}

// Terminal wraps a tcell screen and translates its key events into
// key.Event values.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal over a fresh tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init prepares the screen for drawing.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

// Fini restores the terminal to its previous state.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell places a cell at (x, y).
func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
}

// SetText draws a string left to right starting at (x, y).
func (t *Terminal) SetText(x, y int, text string, style Style) {
	ts := toTcellStyle(style)
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, ts)
		x++
	}
}

// Fill paints every cell of the w by h region at (x, y).
func (t *Terminal) Fill(x, y, w, h int, cell Cell) {
	ts := toTcellStyle(cell.Style)
	sw, sh := t.screen.Size()
	for row := y; row < y+h && row < sh; row++ {
		for col := x; col < x+w && col < sw; col++ {
			if col >= 0 && row >= 0 {
				t.screen.SetContent(col, row, cell.Rune, nil, ts)
			}
		}
	}
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollKey blocks until the next key or resize event. Resize events
// are reported as events with key.KeyNone and resized true; other
// event kinds are swallowed.
func (t *Terminal) PollKey() (ev key.Event, resized bool, ok bool) {
	for {
		switch e := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return fromTcellKey(e), false, true
		case *tcell.EventResize:
			t.screen.Sync()
			return key.Event{}, true, true
		case nil:
			// Screen finalized.
			return key.Event{}, false, false
		}
	}
}

// toTcellStyle converts a Style to its tcell equivalent.
func toTcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		if s.Foreground.Indexed {
			style = style.Foreground(tcell.PaletteColor(int(s.Foreground.R)))
		} else {
			style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
		}
	}
	if !s.Background.IsDefault() {
		if s.Background.Indexed {
			style = style.Background(tcell.PaletteColor(int(s.Background.R)))
		} else {
			style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
		}
	}

	if s.Attributes.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// fromTcellKey converts a tcell key event to a key.Event.
func fromTcellKey(e *tcell.EventKey) key.Event {
	mods := convertMods(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		if e.Rune() == ' ' {
			return key.NewSpecialEvent(key.KeySpace, mods)
		}
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}

	// Ctrl+letter arrives as a control key code, not a rune.
	if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertMods converts a tcell modifier mask to a key.Modifier.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

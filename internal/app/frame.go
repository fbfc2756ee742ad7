package app

import (
	"fmt"

	"github.com/lodestar-tui/lodestar/internal/render"
	"github.com/lodestar-tui/lodestar/internal/target"
)

// Demo widget fixtures. IDs are stable across frames so an active
// session keeps matching after a rebuild.
var (
	menuItems = []string{"File", "Edit", "View", "Help"}

	fileItems = []string{
		"README.md",
		"go.mod",
		"main.go",
		"session.go",
		"overlay.go",
		"matcher.go",
	}

	footerLinks = []string{"docs", "issues", "license"}
)

const (
	menuIDBase   = 100
	fileIDBase   = 200
	footerIDBase = 300
)

var (
	chromeStyle   = render.NewStyle(render.ColorFromRGB(150, 150, 150))
	itemStyle     = render.DefaultStyle()
	selectedStyle = render.DefaultStyle().Reverse()
	statusStyle   = render.NewStyle(render.ColorFromRGB(130, 170, 255))
)

// drawFrame rebuilds the registry and redraws the whole screen. The
// demo re-registers every widget each frame, the way a host UI would.
func (a *App) drawFrame() {
	a.term.Clear()
	a.registry.Clear()

	w, h := a.term.Size()

	a.drawMenu(w)
	a.drawFiles(w, h)
	a.drawFooter(w, h)

	a.term.SetText(0, h-1, clip(a.status, w), statusStyle)

	a.overlay.Draw(a.term, a.registry, a.ctrl.HintSet(), a.ctrl.Prefix(), a.ctrl.Truncated())
	a.term.Show()
}

// drawMenu renders the top menu bar. Menu entries carry high priority
// so they win short codes.
func (a *App) drawMenu(w int) {
	x := 1
	for i, label := range menuItems {
		id := menuIDBase + i
		rect := target.Rect{X: x, Y: 0, Width: len(label), Height: 1}

		a.term.SetText(x, 0, label, a.styleFor(id))
		a.registry.Register(target.New(id, rect).
			WithLabel(label).
			WithPriority(target.PriorityHigh).
			WithGroup("menu"))

		x += len(label) + 2
		if x >= w {
			break
		}
	}
}

// drawFiles renders the file list pane. The last entry is disabled to
// show that disabled targets get no hints.
func (a *App) drawFiles(w, h int) {
	for i, name := range fileItems {
		y := 2 + i
		if y >= h-3 {
			break
		}
		id := fileIDBase + i
		label := fmt.Sprintf("%d %s", i+1, name)
		rect := target.Rect{X: 2, Y: y, Width: len(label), Height: 1}

		state := target.StateNormal
		if i == len(fileItems)-1 {
			state = target.StateDisabled
		}

		a.term.SetText(2, y, clip(label, w-2), a.styleFor(id))
		a.registry.Register(target.New(id, rect).
			WithLabel(name).
			WithGroup("files").
			WithState(state))
	}
}

// drawFooter renders low-priority footer links.
func (a *App) drawFooter(w, h int) {
	x := 1
	y := h - 2
	for i, label := range footerLinks {
		id := footerIDBase + i
		rect := target.Rect{X: x, Y: y, Width: len(label), Height: 1}

		a.term.SetText(x, y, label, chromeStyle)
		a.registry.Register(target.New(id, rect).
			WithLabel(label).
			WithPriority(target.PriorityLow).
			WithGroup("footer"))

		x += len(label) + 2
		if x >= w {
			break
		}
	}
}

func (a *App) styleFor(id int) render.Style {
	if id == a.selected {
		return selectedStyle
	}
	return itemStyle
}

func clip(s string, w int) string {
	if w < 0 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s
}

// Package app hosts the demo application: a small pane-based UI whose
// widgets register hint targets every frame, with hint mode wired end
// to end.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lodestar-tui/lodestar/internal/config"
	"github.com/lodestar-tui/lodestar/internal/event"
	"github.com/lodestar-tui/lodestar/internal/input/key"
	"github.com/lodestar-tui/lodestar/internal/render"
	"github.com/lodestar-tui/lodestar/internal/script"
	"github.com/lodestar-tui/lodestar/internal/session"
	"github.com/lodestar-tui/lodestar/internal/target"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configure the application from the command line.
type Options struct {
	// ConfigPath overrides the default settings file location.
	ConfigPath string

	// Debug enables the diagnostic log.
	Debug bool

	// LogPath is where debug diagnostics go when Debug is set.
	LogPath string
}

// App is the demo host. It owns the terminal, rebuilds the target
// registry each frame and forwards keys to the session controller.
type App struct {
	cfg      config.Config
	term     *render.Terminal
	registry *target.Registry
	ctrl     *session.Controller
	overlay  *render.Overlay
	hooks    *script.Hooks
	logger   *log.Logger

	status   string
	selected int
	logFile  *os.File
}

// New builds the application: configuration, theme, hooks and the
// session controller. The terminal is not initialized yet; Run does
// that.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		registry: target.NewRegistry(),
		status:   fmt.Sprintf("press %s for hints, q to quit", cfg.Hints.ActivateKey),
		selected: -1,
		logger:   log.New(io.Discard, "", 0),
	}

	if opts.Debug {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = "lodestar-demo.log"
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		a.logFile = f
		a.logger = log.New(f, "", log.LstdFlags)
	}

	theme := render.DefaultTheme()
	if cfg.UI.ThemePath != "" {
		theme, err = render.LoadTheme(cfg.UI.ThemePath)
		if err != nil {
			a.close()
			return nil, err
		}
	}
	a.overlay = render.NewOverlay(theme)

	var ctrlOpts []session.Option
	if cfg.Scripts.Path != "" {
		hooks, err := script.Load(cfg.Scripts.Path)
		if err != nil {
			a.close()
			return nil, err
		}
		a.hooks = hooks
		ctrlOpts = append(ctrlOpts, session.WithHooks(hooks))
	}

	bus := event.NewBus()
	bus.Subscribe("hints.session.*", a.onSessionEvent)

	ctrl, err := session.New(cfg, a.registry, bus, ctrlOpts...)
	if err != nil {
		a.close()
		return nil, err
	}
	a.ctrl = ctrl

	return a, nil
}

// Run initializes the terminal and drives the event loop until quit.
func (a *App) Run() error {
	term, err := render.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	a.term = term
	defer term.Fini()

	a.logger.Printf("demo started, alphabet=%q", a.cfg.Hints.Alphabet)

	for {
		a.drawFrame()

		ev, resized, ok := term.PollKey()
		if !ok {
			return nil
		}
		if resized {
			continue
		}

		handled, err := a.ctrl.HandleKey(ev)
		if err != nil {
			a.logger.Printf("session error: %v", err)
			a.status = fmt.Sprintf("hook error: %v", err)
			continue
		}
		if handled {
			continue
		}

		if err := a.handleGlobalKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// Shutdown releases resources on all exit paths.
func (a *App) Shutdown() {
	a.close()
}

func (a *App) close() {
	if a.hooks != nil {
		a.hooks.Close()
		a.hooks = nil
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// handleGlobalKey processes keys the hint session did not claim.
func (a *App) handleGlobalKey(ev key.Event) error {
	switch {
	case ev.IsChar() && ev.Rune == 'q':
		return ErrQuit
	case ev.IsRune() && ev.Rune == 'c' && ev.Modifiers.HasCtrl():
		return ErrQuit
	}
	return nil
}

// onSessionEvent reflects session lifecycle into the status line.
func (a *App) onSessionEvent(env event.Envelope) {
	a.logger.Printf("%s %+v", env.Topic, env.Payload)

	switch payload := env.Payload.(type) {
	case event.SessionActivated:
		a.status = fmt.Sprintf("hint mode: %d targets", payload.Hints)
	case event.SessionUpdated:
		a.status = fmt.Sprintf("hint mode: %q (%d left)", payload.Prefix, payload.Candidates)
	case event.SessionRejected:
		a.status = fmt.Sprintf("hint mode: %q (no match for %q)", payload.Prefix, payload.Input)
	case event.SessionResolved:
		a.selected = payload.TargetID
		if tgt, ok := a.registry.ByID(payload.TargetID); ok {
			a.status = fmt.Sprintf("activated %q", tgt.Label)
		} else {
			a.status = fmt.Sprintf("activated target %d", payload.TargetID)
		}
	case event.SessionCanceled:
		a.status = "hint mode canceled"
	case event.SessionTruncated:
		if a.cfg.UI.ShowTruncation {
			a.status = fmt.Sprintf("%s (+%d hidden)", a.status, payload.Dropped)
		}
	}
}

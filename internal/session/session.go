// Package session drives hint-mode sessions for a host event loop.
//
// The controller owns the glue: it reads the target registry, runs the
// assigner, feeds keystrokes to the matcher, applies script hooks and
// publishes lifecycle events on the bus. The host calls Activate when
// its hint keybinding fires and HandleKey for every keystroke while a
// session is active.
package session

import (
	"fmt"

	"github.com/lodestar-tui/lodestar/internal/config"
	"github.com/lodestar-tui/lodestar/internal/event"
	"github.com/lodestar-tui/lodestar/internal/hint"
	"github.com/lodestar-tui/lodestar/internal/input/key"
	"github.com/lodestar-tui/lodestar/internal/script"
	"github.com/lodestar-tui/lodestar/internal/target"
)

// Option configures a Controller.
type Option func(*Controller)

// WithHooks attaches Lua hooks: filter runs over candidates before
// assignment, on_resolve after a session resolves.
func WithHooks(hooks *script.Hooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// Controller runs hint sessions over a target registry. Like the
// registry it is single-threaded: the host's event loop is the only
// caller.
type Controller struct {
	registry *target.Registry
	assigner *hint.Assigner
	bus      *event.Bus
	hooks    *script.Hooks
	activate key.Event

	matcher   *hint.Matcher
	hints     *hint.HintSet
	truncated int
}

// New builds a controller from validated configuration.
func New(cfg config.Config, registry *target.Registry, bus *event.Bus, opts ...Option) (*Controller, error) {
	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	activate, err := cfg.ActivateEvent()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	c := &Controller{
		registry: registry,
		assigner: hint.NewAssigner(alphabet, cfg.Hints.MaxHints, cfg.Hints.MaxCodeLength),
		bus:      bus,
		activate: activate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Active reports whether a hint session is in progress.
func (c *Controller) Active() bool {
	return c.matcher != nil && c.matcher.State() == hint.StateActive
}

// HintSet returns the active session's codes, or an empty set.
func (c *Controller) HintSet() *hint.HintSet {
	if !c.Active() {
		return hint.EmptyHintSet()
	}
	return c.hints
}

// Prefix returns the input accepted so far in the active session.
func (c *Controller) Prefix() string {
	if !c.Active() {
		return ""
	}
	return c.matcher.Prefix()
}

// Truncated returns how many eligible targets received no code in the
// active session.
func (c *Controller) Truncated() int {
	if !c.Active() {
		return 0
	}
	return c.truncated
}

// Activate starts a session over the current registry contents.
// With zero eligible candidates no session starts and Activate
// returns false. An already active session is left alone.
func (c *Controller) Activate() (bool, error) {
	if c.Active() {
		return true, nil
	}

	candidates := hint.Candidates(c.registry)
	if c.hooks != nil && c.hooks.HasFilter() {
		kept := candidates[:0]
		for _, cand := range candidates {
			keep, err := c.hooks.Filter(cand)
			if err != nil {
				return false, fmt.Errorf("session: %w", err)
			}
			if keep {
				kept = append(kept, cand)
			}
		}
		candidates = kept
	}

	result := c.assigner.Assign(candidates)
	if result.Set.IsEmpty() {
		return false, nil
	}

	c.matcher = hint.NewMatcher(result.Set)
	c.hints = result.Set
	c.truncated = result.Truncated

	c.bus.Publish(event.TopicSessionActivated, event.SessionActivated{
		Hints:     result.Set.Len(),
		Truncated: result.Truncated,
	})
	if result.Truncated > 0 {
		c.bus.Publish(event.TopicSessionTruncated, event.SessionTruncated{
			Dropped: result.Truncated,
		})
	}
	return true, nil
}

// HandleKey feeds one keystroke to the controller. Outside a session
// only the activation binding is recognized; everything else reports
// handled=false so the host routes it normally. During a session every
// keystroke is consumed.
func (c *Controller) HandleKey(ev key.Event) (bool, error) {
	if !c.Active() {
		if ev.Equals(c.activate) {
			_, err := c.Activate()
			return true, err
		}
		return false, nil
	}

	switch {
	case ev.IsEscape():
		c.cancel()
	case ev.IsBackspace():
		c.matcher.Backspace()
		c.publishUpdated()
	case ev.IsChar():
		return true, c.advance(ev.Rune)
	default:
		// Arrows, function keys and chords pass through silently; the
		// session keeps its buffer.
	}
	return true, nil
}

// Cancel ends the active session, if any.
func (c *Controller) Cancel() {
	if c.Active() {
		c.cancel()
	}
}

func (c *Controller) advance(r rune) error {
	step := c.matcher.Advance(r)

	switch step.Outcome {
	case hint.OutcomeResolved:
		code := c.matcher.Prefix()
		resolved, _ := c.matcher.Resolved()
		c.endSession()

		if c.hooks != nil {
			if tgt, ok := c.registry.ByID(resolved); ok {
				if err := c.hooks.OnResolve(*tgt); err != nil {
					return fmt.Errorf("session: %w", err)
				}
			}
		}
		c.bus.Publish(event.TopicSessionResolved, event.SessionResolved{
			TargetID: resolved,
			Code:     code,
		})

	case hint.OutcomeNoMatch:
		c.bus.Publish(event.TopicSessionRejected, event.SessionRejected{
			Input:  r,
			Prefix: c.matcher.Prefix(),
		})

	case hint.OutcomeActive:
		c.publishUpdated()
	}
	return nil
}

func (c *Controller) publishUpdated() {
	c.bus.Publish(event.TopicSessionUpdated, event.SessionUpdated{
		Prefix:     c.matcher.Prefix(),
		Candidates: len(c.matcher.Candidates()),
	})
}

func (c *Controller) cancel() {
	prefix := c.matcher.Prefix()
	c.matcher.Cancel()
	c.endSession()
	c.bus.Publish(event.TopicSessionCanceled, event.SessionCanceled{Prefix: prefix})
}

func (c *Controller) endSession() {
	c.matcher = nil
	c.hints = nil
	c.truncated = 0
}

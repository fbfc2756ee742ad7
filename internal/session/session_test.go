package session

import (
	"testing"

	"github.com/lodestar-tui/lodestar/internal/config"
	"github.com/lodestar-tui/lodestar/internal/event"
	"github.com/lodestar-tui/lodestar/internal/input/key"
	"github.com/lodestar-tui/lodestar/internal/script"
	"github.com/lodestar-tui/lodestar/internal/target"
)

func testConfig(alphabet string) config.Config {
	cfg := config.Default()
	cfg.Hints.Alphabet = alphabet
	cfg.Hints.ActivateKey = "f"
	return cfg
}

func newController(t *testing.T, cfg config.Config, reg *target.Registry, opts ...Option) (*Controller, *recorder) {
	t.Helper()
	bus := event.NewBus()
	rec := &recorder{}
	bus.Subscribe("hints.session.*", rec.record)

	ctrl, err := New(cfg, reg, bus, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctrl, rec
}

type recorder struct {
	events []event.Envelope
}

func (r *recorder) record(env event.Envelope) {
	r.events = append(r.events, env)
}

func (r *recorder) topics() []event.Topic {
	out := make([]event.Topic, len(r.events))
	for i, env := range r.events {
		out[i] = env.Topic
	}
	return out
}

func (r *recorder) last() event.Envelope {
	if len(r.events) == 0 {
		return event.Envelope{}
	}
	return r.events[len(r.events)-1]
}

func threeTargets() *target.Registry {
	reg := target.NewRegistry()
	reg.Register(target.New(1, target.Rect{X: 0, Y: 0, Width: 4, Height: 1}))
	reg.Register(target.New(2, target.Rect{X: 0, Y: 1, Width: 4, Height: 1}))
	reg.Register(target.New(3, target.Rect{X: 0, Y: 2, Width: 4, Height: 1}))
	return reg
}

func TestActivateZeroCandidates(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), target.NewRegistry())

	started, err := ctrl.Activate()
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if started {
		t.Error("Activate() = true with an empty registry")
	}
	if ctrl.Active() {
		t.Error("controller active after a zero-candidate activation")
	}
	if len(rec.events) != 0 {
		t.Errorf("events published on a no-op activation: %v", rec.topics())
	}
}

func TestActivatePublishes(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), threeTargets())

	started, err := ctrl.Activate()
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !started || !ctrl.Active() {
		t.Fatal("session did not start")
	}

	if ctrl.HintSet().Len() != 3 {
		t.Errorf("hint set size = %d, want 3", ctrl.HintSet().Len())
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %v, want one activation", rec.topics())
	}
	payload, ok := rec.last().Payload.(event.SessionActivated)
	if !ok {
		t.Fatalf("payload type = %T", rec.last().Payload)
	}
	if payload.Hints != 3 || payload.Truncated != 0 {
		t.Errorf("payload = %+v, want 3 hints, 0 truncated", payload)
	}
}

func TestActivateTruncation(t *testing.T) {
	cfg := testConfig("ab")
	cfg.Hints.MaxHints = 2

	ctrl, rec := newController(t, cfg, threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if ctrl.Truncated() != 1 {
		t.Errorf("Truncated() = %d, want 1", ctrl.Truncated())
	}

	topics := rec.topics()
	if len(topics) != 2 || topics[1] != event.TopicSessionTruncated {
		t.Fatalf("topics = %v, want activated then truncated", topics)
	}
	if payload := rec.last().Payload.(event.SessionTruncated); payload.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", payload.Dropped)
	}
}

func TestHandleKeyActivationBinding(t *testing.T) {
	ctrl, _ := newController(t, testConfig("ab"), threeTargets())

	handled, err := ctrl.HandleKey(key.NewRuneEvent('x', key.ModNone))
	if err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if handled {
		t.Error("unrelated key claimed while idle")
	}

	handled, err = ctrl.HandleKey(key.NewRuneEvent('f', key.ModNone))
	if err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if !handled || !ctrl.Active() {
		t.Error("activation binding did not start a session")
	}
}

func TestResolveFlow(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	// Codes are aa, ab, ba. First 'a' narrows to two candidates.
	if _, err := ctrl.HandleKey(key.NewRuneEvent('a', key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if ctrl.Prefix() != "a" {
		t.Errorf("prefix = %q, want a", ctrl.Prefix())
	}
	updated, ok := rec.last().Payload.(event.SessionUpdated)
	if !ok || updated.Candidates != 2 {
		t.Errorf("update payload = %+v, want 2 candidates", rec.last().Payload)
	}

	// Second 'a' resolves target 1.
	if _, err := ctrl.HandleKey(key.NewRuneEvent('a', key.ModNone)); err != nil {
		t.Fatal(err)
	}
	if ctrl.Active() {
		t.Error("controller still active after resolution")
	}
	resolved, ok := rec.last().Payload.(event.SessionResolved)
	if !ok {
		t.Fatalf("last payload = %T, want SessionResolved", rec.last().Payload)
	}
	if resolved.TargetID != 1 || resolved.Code != "aa" {
		t.Errorf("resolved = %+v, want target 1 via aa", resolved)
	}
}

func TestRejectedKeyKeepsSession(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.HandleKey(key.NewRuneEvent('x', key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if !ctrl.Active() {
		t.Error("session ended on a rejected key")
	}
	if ctrl.Prefix() != "" {
		t.Errorf("prefix = %q, want unchanged empty buffer", ctrl.Prefix())
	}
	rejected, ok := rec.last().Payload.(event.SessionRejected)
	if !ok {
		t.Fatalf("last payload = %T, want SessionRejected", rec.last().Payload)
	}
	if rejected.Input != 'x' {
		t.Errorf("rejected input = %q, want x", rejected.Input)
	}
}

func TestEscapeCancels(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.HandleKey(key.NewRuneEvent('a', key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if ctrl.Active() {
		t.Error("session survived Escape")
	}
	canceled, ok := rec.last().Payload.(event.SessionCanceled)
	if !ok {
		t.Fatalf("last payload = %T, want SessionCanceled", rec.last().Payload)
	}
	if canceled.Prefix != "a" {
		t.Errorf("canceled prefix = %q, want a", canceled.Prefix)
	}
}

func TestBackspaceWidens(t *testing.T) {
	ctrl, rec := newController(t, testConfig("ab"), threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.HandleKey(key.NewRuneEvent('a', key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)); err != nil {
		t.Fatal(err)
	}

	if ctrl.Prefix() != "" {
		t.Errorf("prefix = %q, want empty after backspace", ctrl.Prefix())
	}
	updated, ok := rec.last().Payload.(event.SessionUpdated)
	if !ok || updated.Candidates != 3 {
		t.Errorf("update payload = %+v, want all 3 candidates back", rec.last().Payload)
	}
}

func TestSessionSurvivesRegistryRebuild(t *testing.T) {
	reg := threeTargets()
	ctrl, rec := newController(t, testConfig("ab"), reg)
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	// Host rebuilds the frame: same widgets, fresh registration.
	reg.Clear()
	reg.Register(target.New(1, target.Rect{X: 5, Y: 5, Width: 4, Height: 1}))
	reg.Register(target.New(2, target.Rect{X: 5, Y: 6, Width: 4, Height: 1}))

	for _, r := range "ab" {
		if _, err := ctrl.HandleKey(key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatal(err)
		}
	}

	resolved, ok := rec.last().Payload.(event.SessionResolved)
	if !ok {
		t.Fatalf("last payload = %T, want SessionResolved", rec.last().Payload)
	}
	if resolved.TargetID != 2 {
		t.Errorf("resolved target = %d, want 2", resolved.TargetID)
	}
}

func TestNonCharKeysPassThrough(t *testing.T) {
	ctrl, _ := newController(t, testConfig("ab"), threeTargets())
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	handled, err := ctrl.HandleKey(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	if err != nil {
		t.Fatal(err)
	}
	if !handled {
		t.Error("session must consume keys while active")
	}
	if !ctrl.Active() || ctrl.Prefix() != "" {
		t.Error("arrow key disturbed the session")
	}
}

func TestHooksFilterCandidates(t *testing.T) {
	hooks, err := script.LoadString(`
		function filter(target)
			return target.group ~= "chrome"
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	defer hooks.Close()

	reg := target.NewRegistry()
	reg.Register(target.New(1, target.Rect{Width: 4, Height: 1}).WithGroup("chrome"))
	reg.Register(target.New(2, target.Rect{Y: 1, Width: 4, Height: 1}).WithGroup("content"))

	ctrl, _ := newController(t, testConfig("ab"), reg, WithHooks(hooks))
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	set := ctrl.HintSet()
	if set.Len() != 1 {
		t.Fatalf("hint set size = %d, want 1 after filtering", set.Len())
	}
	if set.Entries()[0].TargetID != 2 {
		t.Errorf("kept target = %d, want 2", set.Entries()[0].TargetID)
	}
}

func TestHooksFilterAllIsNoop(t *testing.T) {
	hooks, err := script.LoadString(`function filter(target) return false end`)
	if err != nil {
		t.Fatal(err)
	}
	defer hooks.Close()

	ctrl, rec := newController(t, testConfig("ab"), threeTargets(), WithHooks(hooks))

	started, err := ctrl.Activate()
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if started || ctrl.Active() {
		t.Error("session started with every candidate filtered out")
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none", rec.topics())
	}
}

func TestHooksOnResolve(t *testing.T) {
	hooks, err := script.LoadString(`
		seen = 0
		function on_resolve(target)
			seen = target.id
		end
		function filter(target)
			return seen == 0 or target.id == seen
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	defer hooks.Close()

	reg := threeTargets()
	ctrl, _ := newController(t, testConfig("ab"), reg, WithHooks(hooks))
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}

	// Resolve target 2 via "ab".
	for _, r := range "ab" {
		if _, err := ctrl.HandleKey(key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatal(err)
		}
	}

	// A second activation sees the filter keyed off the recorded id.
	if _, err := ctrl.Activate(); err != nil {
		t.Fatal(err)
	}
	set := ctrl.HintSet()
	if set.Len() != 1 || set.Entries()[0].TargetID != 2 {
		t.Errorf("second session hints = %v, want only target 2", set.Entries())
	}
}

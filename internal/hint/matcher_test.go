package hint

import (
	"testing"
)

// threeCodeSet returns the canonical two-character set over "ab":
// aa -> 1, ab -> 2, ba -> 3.
func threeCodeSet(t *testing.T) *HintSet {
	t.Helper()
	a := NewAssigner(MustAlphabet("ab"), 0, 0)
	return a.Assign(makeTargets(3)).Set
}

func TestMatcherStartsActive(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))
	if m.State() != StateActive {
		t.Fatalf("State() = %v, want active", m.State())
	}
	if m.Prefix() != "" {
		t.Errorf("Prefix() = %q, want empty", m.Prefix())
	}
	if got := len(m.Candidates()); got != 3 {
		t.Errorf("Candidates() = %d entries, want 3", got)
	}
}

func TestMatcherNarrowsThenResolves(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))

	step := m.Advance('a')
	if step.Outcome != OutcomeActive {
		t.Fatalf("Advance(a) outcome = %v, want active", step.Outcome)
	}
	if len(step.Candidates) != 2 {
		t.Fatalf("after 'a': %d candidates, want 2 (aa, ab)", len(step.Candidates))
	}
	for _, e := range step.Candidates {
		if e.Code != "aa" && e.Code != "ab" {
			t.Errorf("unexpected candidate %q after 'a'", e.Code)
		}
	}

	step = m.Advance('a')
	if step.Outcome != OutcomeResolved {
		t.Fatalf("Advance(aa) outcome = %v, want resolved", step.Outcome)
	}
	if step.TargetID != 1 {
		t.Errorf("resolved target = %d, want 1", step.TargetID)
	}
	if m.State() != StateResolved {
		t.Errorf("State() = %v, want resolved", m.State())
	}
	if id, ok := m.Resolved(); !ok || id != 1 {
		t.Errorf("Resolved() = (%d, %v), want (1, true)", id, ok)
	}
}

func TestMatcherRoundTripAllCodes(t *testing.T) {
	// Feeding any assigned code character by character must stay
	// active on every strict prefix and resolve exactly on the last
	// character.
	a := NewAssigner(MustAlphabet("asdf"), 0, 0)
	set := a.Assign(makeTargets(11)).Set

	for _, entry := range set.Entries() {
		m := NewMatcher(set)
		runes := []rune(entry.Code)
		for i, r := range runes {
			step := m.Advance(r)
			last := i == len(runes)-1
			if last {
				if step.Outcome != OutcomeResolved {
					t.Fatalf("code %q: outcome after last char = %v, want resolved", entry.Code, step.Outcome)
				}
				if step.TargetID != entry.TargetID {
					t.Fatalf("code %q resolved to %d, want %d", entry.Code, step.TargetID, entry.TargetID)
				}
			} else if step.Outcome != OutcomeActive {
				t.Fatalf("code %q: outcome at prefix %q = %v, want active", entry.Code, entry.Code[:i+1], step.Outcome)
			}
		}
	}
}

func TestMatcherRejectsInvalidCharacter(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))
	m.Advance('a')

	step := m.Advance('x')
	if step.Outcome != OutcomeNoMatch {
		t.Fatalf("Advance(x) outcome = %v, want no-match", step.Outcome)
	}
	if m.Prefix() != "a" {
		t.Errorf("Prefix() = %q after rejected char, want %q unchanged", m.Prefix(), "a")
	}
	if m.State() != StateActive {
		t.Errorf("State() = %v after rejected char, want active", m.State())
	}

	// The session recovers: a valid character still works.
	if got := m.Advance('b'); got.Outcome != OutcomeResolved || got.TargetID != 2 {
		t.Errorf("Advance(b) after rejection = %+v, want resolved 2", got)
	}
}

func TestMatcherSubPrefixOfSingleCandidate(t *testing.T) {
	// With codes {aa, ab, ba}, typing 'b' leaves one candidate whose
	// code is longer than the prefix. The session must stay active and
	// resolve on the next character.
	m := NewMatcher(threeCodeSet(t))

	step := m.Advance('b')
	if step.Outcome != OutcomeActive {
		t.Fatalf("Advance(b) outcome = %v, want active", step.Outcome)
	}
	if len(step.Candidates) != 1 || step.Candidates[0].Code != "ba" {
		t.Fatalf("candidates after 'b' = %v, want [ba]", step.Candidates)
	}

	step = m.Advance('a')
	if step.Outcome != OutcomeResolved || step.TargetID != 3 {
		t.Errorf("Advance(ba) = %+v, want resolved 3", step)
	}
}

func TestMatcherBackspace(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))
	m.Advance('a')

	step := m.Backspace()
	if step.Outcome != OutcomeActive {
		t.Fatalf("Backspace() outcome = %v, want active", step.Outcome)
	}
	if m.Prefix() != "" {
		t.Errorf("Prefix() = %q after backspace, want empty", m.Prefix())
	}
	if len(step.Candidates) != 3 {
		t.Errorf("candidates after backspace = %d, want full set of 3", len(step.Candidates))
	}

	// Backspace at an empty buffer is a no-op.
	step = m.Backspace()
	if step.Outcome != OutcomeActive || m.Prefix() != "" {
		t.Errorf("Backspace() on empty buffer = %+v, prefix %q", step, m.Prefix())
	}
}

func TestMatcherCancel(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))
	m.Advance('a')

	m.Cancel()
	if m.State() != StateIdle {
		t.Fatalf("State() after Cancel = %v, want idle", m.State())
	}
	if m.Prefix() != "" {
		t.Errorf("Prefix() after Cancel = %q, want empty", m.Prefix())
	}
	if step := m.Advance('a'); step.Outcome != OutcomeNoMatch {
		t.Errorf("Advance after Cancel = %v, want no-match", step.Outcome)
	}
}

func TestMatcherEmptySetRejectsEverything(t *testing.T) {
	m := NewMatcher(EmptyHintSet())
	if step := m.Advance('a'); step.Outcome != OutcomeNoMatch {
		t.Errorf("Advance on empty set = %v, want no-match", step.Outcome)
	}
	if m.Prefix() != "" {
		t.Errorf("Prefix() = %q, want empty", m.Prefix())
	}
}

func TestMatcherAdvanceAfterResolveIsInert(t *testing.T) {
	m := NewMatcher(threeCodeSet(t))
	m.Advance('a')
	m.Advance('a')

	if step := m.Advance('b'); step.Outcome != OutcomeNoMatch {
		t.Errorf("Advance after resolve = %v, want no-match", step.Outcome)
	}
	if id, ok := m.Resolved(); !ok || id != 1 {
		t.Errorf("Resolved() = (%d, %v) after extra input, want (1, true)", id, ok)
	}
}

func TestOutcomeAndStateStrings(t *testing.T) {
	outcomes := []struct {
		o    Outcome
		want string
	}{
		{OutcomeActive, "active"},
		{OutcomeResolved, "resolved"},
		{OutcomeNoMatch, "no-match"},
		{Outcome(9), "unknown"},
	}
	for _, tt := range outcomes {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome.String() = %q, want %q", got, tt.want)
		}
	}

	states := []struct {
		s    SessionState
		want string
	}{
		{StateIdle, "idle"},
		{StateActive, "active"},
		{StateResolved, "resolved"},
		{SessionState(9), "unknown"},
	}
	for _, tt := range states {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("SessionState.String() = %q, want %q", got, tt.want)
		}
	}
}

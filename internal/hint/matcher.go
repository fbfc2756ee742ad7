package hint

// SessionState is the matcher's lifecycle state.
type SessionState uint8

const (
	// StateIdle means no hint session is active.
	StateIdle SessionState = iota

	// StateActive means a session holds a HintSet and is accepting
	// characters.
	StateActive

	// StateResolved means the session ended on a unique match.
	StateResolved
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of feeding one character to the
// matcher.
type Outcome uint8

const (
	// OutcomeActive means the session continues; the candidate subset
	// carried on the step result is what should be re-rendered.
	OutcomeActive Outcome = iota

	// OutcomeResolved means the typed prefix uniquely matched a full
	// code; the session is over.
	OutcomeResolved

	// OutcomeNoMatch means the character matched no remaining
	// candidate. It was rejected locally: the buffer is unchanged and
	// the session stays active.
	OutcomeNoMatch
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "active"
	case OutcomeResolved:
		return "resolved"
	case OutcomeNoMatch:
		return "no-match"
	default:
		return "unknown"
	}
}

// StepResult reports the effect of one matcher step.
type StepResult struct {
	// Outcome classifies the step.
	Outcome Outcome

	// TargetID is the resolved target when Outcome is OutcomeResolved.
	TargetID int

	// Candidates is the remaining subset when Outcome is
	// OutcomeActive, in assignment order.
	Candidates []Entry
}

// Matcher accumulates typed input against one HintSet. It holds no
// state beyond the input buffer and the set reference, so each step is
// a pure function of (current state, next character).
//
// The matcher survives frame rebuilds of the target registry; it ends
// only by resolution or an explicit Cancel.
type Matcher struct {
	state    SessionState
	set      *HintSet
	prefix   []rune
	resolved int
}

// NewMatcher starts an active session over the given HintSet.
// Activation with an empty set is the caller's concern; a matcher over
// an empty set rejects every character.
func NewMatcher(set *HintSet) *Matcher {
	return &Matcher{state: StateActive, set: set}
}

// State returns the current session state.
func (m *Matcher) State() SessionState {
	return m.state
}

// Prefix returns the characters accepted so far.
func (m *Matcher) Prefix() string {
	return string(m.prefix)
}

// Candidates returns the subset of entries matching the current
// prefix, in assignment order.
func (m *Matcher) Candidates() []Entry {
	if m.state != StateActive {
		return nil
	}
	return m.set.WithPrefix(string(m.prefix))
}

// Resolved returns the matched target ID once the session resolved.
func (m *Matcher) Resolved() (int, bool) {
	if m.state != StateResolved {
		return 0, false
	}
	return m.resolved, true
}

// Advance feeds one character into the session.
//
// A character that leaves no candidate is rejected: the buffer keeps
// its previous value and the step reports OutcomeNoMatch. A character
// that narrows to exactly one candidate resolves the session when the
// prefix equals the full code; if the prefix is still a strict
// sub-prefix of the one remaining code the session stays active and
// expects more characters. The balanced construction in Assign never
// produces that sub-prefix case, but it is handled rather than assumed
// away.
func (m *Matcher) Advance(r rune) StepResult {
	if m.state != StateActive {
		return StepResult{Outcome: OutcomeNoMatch}
	}

	next := string(append(m.prefix, r))
	subset := m.set.WithPrefix(next)

	switch len(subset) {
	case 0:
		return StepResult{Outcome: OutcomeNoMatch}
	case 1:
		m.prefix = append(m.prefix, r)
		if subset[0].Code == next {
			m.state = StateResolved
			m.resolved = subset[0].TargetID
			return StepResult{Outcome: OutcomeResolved, TargetID: m.resolved}
		}
		return StepResult{Outcome: OutcomeActive, Candidates: subset}
	default:
		m.prefix = append(m.prefix, r)
		return StepResult{Outcome: OutcomeActive, Candidates: subset}
	}
}

// Backspace removes the last accepted character, widening the
// candidate subset. At an empty buffer it is a no-op.
func (m *Matcher) Backspace() StepResult {
	if m.state != StateActive {
		return StepResult{Outcome: OutcomeNoMatch}
	}
	if len(m.prefix) > 0 {
		m.prefix = m.prefix[:len(m.prefix)-1]
	}
	return StepResult{Outcome: OutcomeActive, Candidates: m.Candidates()}
}

// Cancel ends the session from any state, discarding the buffer and
// the HintSet reference.
func (m *Matcher) Cancel() {
	m.state = StateIdle
	m.set = EmptyHintSet()
	m.prefix = nil
	m.resolved = 0
}

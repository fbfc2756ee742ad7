package hint

import (
	"sort"

	"github.com/lodestar-tui/lodestar/internal/target"
)

// Assigner produces hint codes for a prioritized candidate list.
type Assigner struct {
	alphabet Alphabet

	// maxHints caps how many targets receive hints in one session.
	maxHints int

	// maxCodeLength caps code length. Candidates beyond the
	// alphabet's capacity at this length are dropped with a
	// truncation signal rather than an error.
	maxCodeLength int
}

// Defaults applied when an Assigner option is zero.
const (
	DefaultMaxHints      = 100
	DefaultMaxCodeLength = 3
)

// NewAssigner creates an assigner for the given alphabet. Non-positive
// limits fall back to the defaults.
func NewAssigner(alphabet Alphabet, maxHints, maxCodeLength int) *Assigner {
	if maxHints <= 0 {
		maxHints = DefaultMaxHints
	}
	if maxCodeLength <= 0 {
		maxCodeLength = DefaultMaxCodeLength
	}
	return &Assigner{alphabet: alphabet, maxHints: maxHints, maxCodeLength: maxCodeLength}
}

// Alphabet returns the configured alphabet.
func (a *Assigner) Alphabet() Alphabet {
	return a.alphabet
}

// Result is the outcome of one assignment run.
type Result struct {
	// Set holds the assigned codes. Empty when there were no
	// candidates; that is not an error.
	Set *HintSet

	// Truncated is the number of eligible targets that did not
	// receive a code because of the hint cap or the alphabet's
	// encodable capacity. Hosts may surface it as a UI notice
	// ("N more targets not shown").
	Truncated int
}

// Candidates selects hint-eligible targets from a registry snapshot:
// disabled targets are excluded, the rest are ordered by descending
// priority with ties broken by ascending ID.
func Candidates(reg *target.Registry) []target.Target {
	all := reg.All()
	out := make([]target.Target, 0, len(all))
	for _, t := range all {
		if t.State == target.StateDisabled {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Assign produces a HintSet for the given candidates. The list must
// already be in assignment order (priority descending, ID ascending),
// as returned by Candidates.
//
// Codes form a balanced prefix tree over the alphabet: every code has
// the minimum uniform length ceil(log_k(n)), no code is a prefix of
// another, and codes are handed out in lexicographic alphabet order so
// the front of the candidate list gets the most reachable sequences.
func (a *Assigner) Assign(candidates []target.Target) Result {
	n := len(candidates)
	if n == 0 {
		return Result{Set: EmptyHintSet()}
	}

	truncated := 0
	if n > a.maxHints {
		truncated += n - a.maxHints
		candidates = candidates[:a.maxHints]
		n = a.maxHints
	}
	if capacity := a.alphabet.Capacity(a.maxCodeLength); n > capacity {
		truncated += n - capacity
		candidates = candidates[:capacity]
		n = capacity
	}

	length := a.alphabet.CodeLength(n)
	entries := make([]Entry, n)
	digits := make([]int, length)
	code := make([]rune, length)
	for i, cand := range candidates {
		for pos, d := range digits {
			code[pos] = a.alphabet.At(d)
		}
		entries[i] = Entry{Code: string(code), TargetID: cand.ID}
		increment(digits, a.alphabet.Len())
	}

	return Result{Set: newHintSet(entries), Truncated: truncated}
}

// increment advances a base-k digit counter by one, most significant
// digit first.
func increment(digits []int, base int) {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < base {
			return
		}
		digits[i] = 0
	}
}

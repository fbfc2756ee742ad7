package hint

import "strings"

// Entry is one code-to-target assignment in a HintSet.
type Entry struct {
	// Code is the hint code the user types to select the target.
	Code string

	// TargetID identifies the target in the registry snapshot the
	// HintSet was produced from.
	TargetID int
}

// HintSet is an ordered mapping from hint code to target ID, produced
// fresh on each hint-mode activation and discarded when the session
// ends. Entry order follows assignment order: priority descending,
// then ascending target ID.
type HintSet struct {
	entries []Entry
	byCode  map[string]int
}

// newHintSet builds a HintSet from assignment-ordered entries.
func newHintSet(entries []Entry) *HintSet {
	byCode := make(map[string]int, len(entries))
	for i, e := range entries {
		byCode[e.Code] = i
	}
	return &HintSet{entries: entries, byCode: byCode}
}

// EmptyHintSet returns a HintSet with no assignments.
func EmptyHintSet() *HintSet {
	return newHintSet(nil)
}

// Len returns the number of assigned codes.
func (s *HintSet) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether no codes were assigned.
func (s *HintSet) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns all assignments in order. Callers must not mutate
// the returned slice.
func (s *HintSet) Entries() []Entry {
	return s.entries
}

// Lookup returns the target ID for an exact code.
func (s *HintSet) Lookup(code string) (int, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return 0, false
	}
	return s.entries[i].TargetID, true
}

// WithPrefix returns all entries whose code starts with the given
// prefix, in assignment order. An empty prefix returns every entry.
func (s *HintSet) WithPrefix(prefix string) []Entry {
	if prefix == "" {
		return s.entries
	}
	var out []Entry
	for _, e := range s.entries {
		if strings.HasPrefix(e.Code, prefix) {
			out = append(out, e)
		}
	}
	return out
}

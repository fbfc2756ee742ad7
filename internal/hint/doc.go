// Package hint generates prefix-free hint codes for navigable targets
// and progressively matches typed characters against them.
//
// The assigner consumes a prioritized candidate list from the target
// registry and produces a HintSet: an ordered code-to-target mapping
// built as a balanced k-ary prefix tree, so every code has length
// ceil(log_k(n)) and no code is a prefix of another. Higher-priority
// candidates receive codes built from earlier alphabet characters.
//
// The matcher is a small state machine over one HintSet. Each accepted
// character narrows the candidate subset; an exact match resolves the
// session, an impossible character is rejected without consuming the
// buffer, and an explicit cancel discards the session from any state.
package hint

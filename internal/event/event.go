// Package event provides the synchronous topic bus that carries hint
// session lifecycle notifications to collaborators such as the overlay
// renderer and the host status line.
//
// Everything is delivered inline on the publishing goroutine; the
// framework is single-threaded by contract, so there is no queueing,
// no workers and no delivery reordering.
package event

import (
	"strings"
	"time"
)

// Topic is a hierarchical event type such as "hints.session.resolved".
type Topic string

// Session lifecycle topics.
const (
	// TopicSessionActivated fires when a hint session starts with a
	// freshly assigned HintSet.
	TopicSessionActivated Topic = "hints.session.activated"

	// TopicSessionUpdated fires when accepted input narrowed or
	// widened the candidate subset.
	TopicSessionUpdated Topic = "hints.session.updated"

	// TopicSessionRejected fires when a keystroke matched no
	// remaining candidate and was dropped.
	TopicSessionRejected Topic = "hints.session.rejected"

	// TopicSessionResolved fires when the session ended on a unique
	// match.
	TopicSessionResolved Topic = "hints.session.resolved"

	// TopicSessionCanceled fires when the session was canceled.
	TopicSessionCanceled Topic = "hints.session.canceled"

	// TopicSessionTruncated fires when assignment dropped eligible
	// targets because of the hint cap or alphabet capacity.
	TopicSessionTruncated Topic = "hints.session.truncated"
)

// Matches reports whether the topic matches a subscription pattern.
// A pattern either names a topic exactly or ends in ".*" to match a
// whole subtree: "hints.session.*" matches every session topic.
func (t Topic) Matches(pattern Topic) bool {
	if t == pattern {
		return true
	}
	if strings.HasSuffix(string(pattern), ".*") {
		prefix := strings.TrimSuffix(string(pattern), "*")
		return strings.HasPrefix(string(t), prefix)
	}
	return false
}

// Envelope wraps a published payload with its topic and timestamp.
type Envelope struct {
	Topic     Topic
	Payload   any
	Timestamp time.Time
}

// SessionActivated is the payload for TopicSessionActivated.
type SessionActivated struct {
	// Hints is the number of assigned codes.
	Hints int

	// Truncated is the number of eligible targets left without codes.
	Truncated int
}

// SessionUpdated is the payload for TopicSessionUpdated.
type SessionUpdated struct {
	// Prefix is the input accepted so far.
	Prefix string

	// Candidates is the size of the remaining subset.
	Candidates int
}

// SessionRejected is the payload for TopicSessionRejected.
type SessionRejected struct {
	// Input is the rejected character.
	Input rune

	// Prefix is the unchanged buffer.
	Prefix string
}

// SessionResolved is the payload for TopicSessionResolved.
type SessionResolved struct {
	// TargetID is the activated target.
	TargetID int

	// Code is the full hint code that was typed.
	Code string
}

// SessionCanceled is the payload for TopicSessionCanceled.
type SessionCanceled struct {
	// Prefix is the buffer at the moment of cancellation.
	Prefix string
}

// SessionTruncated is the payload for TopicSessionTruncated.
type SessionTruncated struct {
	// Dropped is the number of eligible targets without codes.
	Dropped int
}

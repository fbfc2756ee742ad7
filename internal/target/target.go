// Package target maintains the per-frame index of navigable screen
// regions. The host clears and re-registers targets once per rendered
// frame; hint assignment and spatial queries (tooltips, click-through)
// read from the same registry snapshot.
package target

import "fmt"

// Priority orders targets for hint assignment. Higher-priority targets
// are kept when the candidate list is truncated and receive shorter,
// more reachable hint codes.
type Priority uint8

const (
	PriorityLow      Priority = 50
	PriorityNormal   Priority = 100
	PriorityHigh     Priority = 150
	PriorityCritical Priority = 200
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", uint8(p))
	}
}

// State is the visual/interaction state of a target.
type State uint8

const (
	// StateNormal is the default interactive state.
	StateNormal State = iota

	// StateHighlighted marks a target under the pointer or cursor.
	StateHighlighted

	// StateSelected marks the currently selected target.
	StateSelected

	// StateDisabled marks a target that cannot be activated.
	// Disabled targets never receive hint codes.
	StateDisabled
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateSelected:
		return "selected"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Rect is a rectangle in terminal cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsDegenerate returns true if the rectangle covers no cells.
// Degenerate rectangles are accepted by the registry but can never be
// hit by a spatial query.
func (r Rect) IsDegenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered, zero for degenerate rects.
func (r Rect) Area() int {
	if r.IsDegenerate() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the point falls inside the rectangle.
// Containment is inclusive of the left/top edge and exclusive of the
// right/bottom edge.
func (r Rect) Contains(x, y int) bool {
	if r.IsDegenerate() {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether two rectangles share at least one cell.
// Degenerate rectangles never overlap anything.
func (r Rect) Overlaps(other Rect) bool {
	if r.IsDegenerate() || other.IsDegenerate() {
		return false
	}
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

// Center returns the center of the rectangle in cell coordinates.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// String returns a compact representation for debugging.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Target describes one navigable rectangular region. Targets are
// value types, immutable for the duration of a frame unless the host
// replaces them by re-registering the same ID.
type Target struct {
	// ID is unique within one registry generation. Hosts that want a
	// target to keep its hint identity across frames reuse the same ID.
	ID int

	// Rect is the region in terminal cell coordinates.
	Rect Rect

	// Label is an optional display string. It is never consulted by
	// matching logic, only by hint rendering.
	Label string

	// Priority picks which targets receive hints when the candidate
	// count exceeds the configured maximum, and biases code brevity.
	Priority Priority

	// Group is an optional logical tag (e.g. "tabs") used by filters.
	Group string

	// State is the visual/interaction state.
	State State

	// Metadata carries host-defined data, opaque to the core.
	Metadata map[string]string
}

// New creates a target with normal priority and state.
func New(id int, rect Rect) Target {
	return Target{ID: id, Rect: rect, Priority: PriorityNormal, State: StateNormal}
}

// WithLabel returns a copy with the label set.
func (t Target) WithLabel(label string) Target {
	t.Label = label
	return t
}

// WithPriority returns a copy with the priority set.
func (t Target) WithPriority(p Priority) Target {
	t.Priority = p
	return t
}

// WithGroup returns a copy with the group tag set.
func (t Target) WithGroup(group string) Target {
	t.Group = group
	return t
}

// WithState returns a copy with the state set.
func (t Target) WithState(s State) Target {
	t.State = s
	return t
}

// WithMeta returns a copy with a metadata key set. The metadata map is
// copied so frame snapshots do not alias.
func (t Target) WithMeta(key, value string) Target {
	meta := make(map[string]string, len(t.Metadata)+1)
	for k, v := range t.Metadata {
		meta[k] = v
	}
	meta[key] = value
	t.Metadata = meta
	return t
}

// Meta returns a metadata value, or empty string if absent.
func (t Target) Meta(key string) string {
	return t.Metadata[key]
}

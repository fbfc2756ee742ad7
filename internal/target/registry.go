package target

import "sort"

// Registry owns the current frame's set of targets. Entries keep
// insertion order; an id index gives O(1) lookup. The host calls
// Clear once at the start of each frame before re-registering.
//
// Registry is not safe for concurrent use. All access is expected on
// the UI thread; hosts embedding it elsewhere must serialize
// externally.
type Registry struct {
	targets []Target
	byID    map[int]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[int]int)}
}

// Register inserts the target, or replaces the existing entry in
// place when the ID is already present. Replacing is expected across
// frames that reuse stable IDs.
func (r *Registry) Register(t Target) {
	if idx, ok := r.byID[t.ID]; ok {
		r.targets[idx] = t
		return
	}
	r.byID[t.ID] = len(r.targets)
	r.targets = append(r.targets, t)
}

// Remove deletes the target with the given ID, preserving insertion
// order of the remainder. Returns whether a removal occurred.
func (r *Registry) Remove(id int) bool {
	idx, ok := r.byID[id]
	if !ok {
		return false
	}
	r.targets = append(r.targets[:idx], r.targets[idx+1:]...)
	delete(r.byID, id)
	for i := idx; i < len(r.targets); i++ {
		r.byID[r.targets[i].ID] = i
	}
	return true
}

// Clear drops all entries.
func (r *Registry) Clear() {
	r.targets = r.targets[:0]
	r.byID = make(map[int]int)
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// ByID returns the target with the given ID. The returned pointer
// aliases registry storage and stays valid until the next mutation.
func (r *Registry) ByID(id int) (*Target, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.targets[idx], true
}

// All returns all targets in insertion order. The slice aliases
// registry storage; callers must not mutate it.
func (r *Registry) All() []Target {
	return r.targets
}

// AtPoint returns all targets whose rect contains the point, in
// insertion order. Containment follows the half-open convention;
// out-of-range coordinates simply yield no results.
func (r *Registry) AtPoint(x, y int) []*Target {
	var hits []*Target
	for i := range r.targets {
		if r.targets[i].Rect.Contains(x, y) {
			hits = append(hits, &r.targets[i])
		}
	}
	return hits
}

// InArea returns all targets whose rect overlaps the query rect, in
// insertion order. Zero-area rects on either side never overlap.
func (r *Registry) InArea(area Rect) []*Target {
	var hits []*Target
	for i := range r.targets {
		if r.targets[i].Rect.Overlaps(area) {
			hits = append(hits, &r.targets[i])
		}
	}
	return hits
}

// ClosestTo returns the target whose rect center is nearest to the
// point by Euclidean distance. Exact distance ties resolve to the
// lowest ID so results are reproducible.
func (r *Registry) ClosestTo(x, y int) (*Target, bool) {
	var best *Target
	var bestDist float64
	for i := range r.targets {
		t := &r.targets[i]
		cx, cy := t.Rect.Center()
		dx, dy := cx-float64(x), cy-float64(y)
		dist := dx*dx + dy*dy
		switch {
		case best == nil:
			best, bestDist = t, dist
		case dist < bestDist:
			best, bestDist = t, dist
		case dist == bestDist && t.ID < best.ID:
			best = t
		}
	}
	return best, best != nil
}

// ByPriority returns targets with the given priority, insertion order.
func (r *Registry) ByPriority(p Priority) []*Target {
	var hits []*Target
	for i := range r.targets {
		if r.targets[i].Priority == p {
			hits = append(hits, &r.targets[i])
		}
	}
	return hits
}

// ByGroup returns targets with the given group tag, insertion order.
func (r *Registry) ByGroup(group string) []*Target {
	var hits []*Target
	for i := range r.targets {
		if r.targets[i].Group == group {
			hits = append(hits, &r.targets[i])
		}
	}
	return hits
}

// ByState returns targets in the given state, insertion order.
func (r *Registry) ByState(s State) []*Target {
	var hits []*Target
	for i := range r.targets {
		if r.targets[i].State == s {
			hits = append(hits, &r.targets[i])
		}
	}
	return hits
}

// SortedByPriority returns all targets ordered by descending
// priority, ties broken by ascending ID.
func (r *Registry) SortedByPriority() []*Target {
	out := r.pointers()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortedByArea returns all targets ordered by descending rect area,
// ties broken by ascending ID. Degenerate rects sort as zero area.
func (r *Registry) SortedByArea() []*Target {
	out := r.pointers()
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].Rect.Area(), out[j].Rect.Area()
		if ai != aj {
			return ai > aj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// pointers returns a fresh slice of pointers into registry storage.
func (r *Registry) pointers() []*Target {
	out := make([]*Target, len(r.targets))
	for i := range r.targets {
		out[i] = &r.targets[i]
	}
	return out
}

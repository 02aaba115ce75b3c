package engine

import "github.com/zyedidia/generic/mapset"

// RevealTracker remembers which countdown values already played their
// entrance animation. Values are kept in the order they were observed.
type RevealTracker struct {
	max   int
	seen  mapset.Set[int]
	order []int
}

// NewRevealTracker accepts values in [1, max].
func NewRevealTracker(max int) *RevealTracker {
	return &RevealTracker{
		max:  max,
		seen: mapset.New[int](),
	}
}

// Observe records v if it is in range and new. It reports whether v was added.
func (r *RevealTracker) Observe(v int) bool {
	if v < 1 || v > r.max || r.seen.Has(v) {
		return false
	}
	r.seen.Put(v)
	r.order = append(r.order, v)
	return true
}

// Has reports whether v was already revealed.
func (r *RevealTracker) Has(v int) bool {
	return r.seen.Has(v)
}

// Len is the number of revealed values.
func (r *RevealTracker) Len() int {
	return r.seen.Size()
}

// Values returns the revealed values in insertion order.
func (r *RevealTracker) Values() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// Reset forgets every value.
func (r *RevealTracker) Reset() {
	r.seen = mapset.New[int]()
	r.order = nil
}

package drawable

import "math"

// Queue is the insertion-ordered list of transforms owned by one Drawable.
// The last transform of a property is the one whose end value is the
// property's eventual target.
type Queue struct {
	items []*Transform
}

// Len returns the number of queued transforms.
func (q *Queue) Len() int {
	return len(q.items)
}

// Add appends t.
func (q *Queue) Add(t *Transform) {
	q.items = append(q.items, t)
}

// All returns the queued transforms in insertion order. The slice is a copy;
// the transforms are not.
func (q *Queue) All() []*Transform {
	out := make([]*Transform, len(q.items))
	copy(out, q.items)
	return out
}

// Clear drops every transform.
func (q *Queue) Clear() {
	q.items = nil
}

// RemoveAll drops every transform of property p and returns how many went.
func (q *Queue) RemoveAll(p Property) int {
	return q.removeWhere(func(t *Transform) bool { return t.Property == p })
}

func (q *Queue) removeWhere(match func(*Transform) bool) int {
	kept := q.items[:0]
	for _, t := range q.items {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	removed := len(q.items) - len(kept)
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
	return removed
}

// FindLast returns the most recently added transform of property p, or nil.
func (q *Queue) FindLast(p Property) *Transform {
	for i := len(q.items) - 1; i >= 0; i-- {
		if q.items[i].Property == p {
			return q.items[i]
		}
	}
	return nil
}

// Shift moves every transform's window by offset.
func (q *Queue) Shift(offset float64) {
	for _, t := range q.items {
		t.Shift(offset)
	}
}

// MaxEndTime is the latest end time queued, or -Inf when empty.
func (q *Queue) MaxEndTime() float64 {
	max := math.Inf(-1)
	for _, t := range q.items {
		if t.EndTime > max {
			max = t.EndTime
		}
	}
	return max
}

// MinStartTime is the earliest start time queued, or +Inf when empty.
func (q *Queue) MinStartTime() float64 {
	min := math.Inf(1)
	for _, t := range q.items {
		if t.StartTime < min {
			min = t.StartTime
		}
	}
	return min
}

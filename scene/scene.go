package scene

import (
	"log"

	"github.com/matt-g-everett/drawtx/drawable"
)

// Scene owns a flat list of drawables sharing one clock. Each Update drives
// the drawables' transforms and removes the ones whose lifetime has ended.
type Scene struct {
	clock drawable.Clock
	nodes []*drawable.Drawable
}

// New creates an empty Scene on clock.
func New(clock drawable.Clock) *Scene {
	s := new(Scene)
	s.clock = clock
	return s
}

// Clock returns the clock shared by every node in the scene.
func (s *Scene) Clock() drawable.Clock {
	return s.clock
}

// Add loads d onto the scene clock and appends it. Nodes loaded on another
// clock are rebased so their queued transforms keep their relative timing.
func (s *Scene) Add(d *drawable.Drawable) {
	if d.IsLoaded() {
		d.SetClock(s.clock)
	} else {
		d.Load(s.clock)
	}
	s.nodes = append(s.nodes, d)
}

// Remove drops d from the scene. It reports whether d was present.
func (s *Scene) Remove(d *drawable.Drawable) bool {
	for i, n := range s.nodes {
		if n == d {
			copy(s.nodes[i:], s.nodes[i+1:])
			s.nodes[len(s.nodes)-1] = nil
			s.nodes = s.nodes[:len(s.nodes)-1]
			return true
		}
	}
	return false
}

// Nodes returns the drawables in the order they were added.
func (s *Scene) Nodes() []*drawable.Drawable {
	out := make([]*drawable.Drawable, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Find returns the first drawable with the given name.
func (s *Scene) Find(name string) *drawable.Drawable {
	for _, n := range s.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Len returns the number of drawables in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Update sweeps expired drawables and updates the ones whose lifetime has
// started. It returns the number of drawables removed.
func (s *Scene) Update() int {
	now := s.clock.CurrentTime()

	kept := s.nodes[:0]
	removed := 0
	for _, n := range s.nodes {
		if now >= n.LifetimeEnd {
			log.Printf("Expired %s at %.0fms", n.Name, now)
			removed++
			continue
		}
		kept = append(kept, n)
		if now < n.LifetimeStart {
			continue
		}
		n.Update()
	}
	for i := len(kept); i < len(s.nodes); i++ {
		s.nodes[i] = nil
	}
	s.nodes = kept

	return removed
}

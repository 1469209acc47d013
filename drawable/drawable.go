package drawable

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A Drawable is a node in a retained scene graph whose visual properties can
// be animated against a logical clock.
type Drawable struct {
	Name     string
	Alpha    float64
	Rotation float64
	Position mgl64.Vec2
	Scale    mgl64.Vec2
	Colour   Colour

	// LifetimeStart and LifetimeEnd bound the time window in which the node
	// should be updated. They are written by Expire and read by a scene sweep.
	LifetimeStart float64
	LifetimeEnd   float64

	clock               Clock
	transforms          Queue
	transformationDelay float64
}

// New creates a fully opaque, unscaled, white Drawable that lives forever.
// It must be loaded onto a clock before it can be animated.
func New(name string) *Drawable {
	d := new(Drawable)
	d.Name = name
	d.Alpha = 1
	d.Scale = mgl64.Vec2{1, 1}
	d.Colour = White
	d.LifetimeStart = math.Inf(-1)
	d.LifetimeEnd = math.Inf(1)
	return d
}

// Load attaches the Drawable to its clock. Animation helpers panic until it
// has been called.
func (d *Drawable) Load(clock Clock) {
	if clock == nil {
		panic("drawable: Load with nil clock")
	}
	d.clock = clock
}

// IsLoaded reports whether the Drawable has a clock.
func (d *Drawable) IsLoaded() bool {
	return d.clock != nil
}

// Clock returns the clock the Drawable was loaded with.
func (d *Drawable) Clock() Clock {
	return d.clock
}

// SetClock moves the Drawable onto another clock, shifting queued transforms
// so that they keep their position relative to the current time.
func (d *Drawable) SetClock(clock Clock) {
	d.mustBeLoaded()
	previous := d.Time()
	d.Load(clock)
	d.TimeWarp(d.Time() - previous)
}

// Time is the current logical time in milliseconds.
func (d *Drawable) Time() float64 {
	d.mustBeLoaded()
	return d.clock.CurrentTime()
}

// Transforms returns the queued transforms in insertion order.
func (d *Drawable) Transforms() []*Transform {
	return d.transforms.All()
}

// IsAlive reports whether time falls inside the lifetime window.
func (d *Drawable) IsAlive(time float64) bool {
	return time >= d.LifetimeStart && time < d.LifetimeEnd
}

// Update applies every transform that has started, in insertion order, and
// drops the ones that have finished. Repeating transforms are moved to their
// next window instead.
func (d *Drawable) Update() {
	now := d.Time()

	for _, t := range d.transforms.All() {
		if t.StartTime > now {
			continue
		}
		t.Apply(d, now)
		if t.EndTime > now || !t.repeating {
			continue
		}
		for t.EndTime <= now {
			t.Loop(t.repeatDelay)
			if t.Duration() == 0 && t.repeatDelay == 0 {
				break
			}
		}
	}

	d.transforms.removeWhere(func(t *Transform) bool {
		return !t.repeating && t.EndTime <= now
	})
}

// updateTransformsOf brings started transforms of p up to the current time so
// the live property reflects them.
func (d *Drawable) updateTransformsOf(p Property) {
	now := d.Time()
	for _, t := range d.transforms.items {
		if t.Property == p && t.StartTime <= now {
			t.Apply(d, now)
		}
	}
}

func (d *Drawable) get(p Property) Value {
	switch p {
	case Alpha:
		return ScalarValue(d.Alpha)
	case Rotation:
		return ScalarValue(d.Rotation)
	case PositionX:
		return ScalarValue(d.Position.X())
	case PositionY:
		return ScalarValue(d.Position.Y())
	case Position:
		return VectorValue(d.Position)
	case Scale:
		return VectorValue(d.Scale)
	case Tint:
		return ColourValue(d.Colour)
	}
	panic("drawable: unknown property " + p.String())
}

func (d *Drawable) set(p Property, v Value) {
	switch p {
	case Alpha:
		d.Alpha = v.Scalar()
	case Rotation:
		d.Rotation = v.Scalar()
	case PositionX:
		d.Position[0] = v.Scalar()
	case PositionY:
		d.Position[1] = v.Scalar()
	case Position:
		d.Position = v.Vector()
	case Scale:
		d.Scale = v.Vector()
	case Tint:
		d.Colour = v.Colour()
	default:
		panic("drawable: unknown property " + p.String())
	}
}

func (d *Drawable) mustBeLoaded() {
	if d.clock == nil {
		panic("drawable: " + d.Name + " animated before Load")
	}
}

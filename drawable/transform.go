package drawable

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/drawtx/easing"
)

// A Property names the single attribute of a Drawable that a Transform animates.
type Property int

// Animatable properties.
const (
	Alpha Property = iota
	Rotation
	PositionX
	PositionY
	Position
	Scale
	Tint
)

var propertyNames = [...]string{
	Alpha:     "alpha",
	Rotation:  "rotation",
	PositionX: "positionX",
	PositionY: "positionY",
	Position:  "position",
	Scale:     "scale",
	Tint:      "colour",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

func (p Property) kind() valueKind {
	switch p {
	case Position, Scale:
		return vectorKind
	case Tint:
		return colourKind
	default:
		return scalarKind
	}
}

// A Transform interpolates one property of a Drawable between two values over
// a window of logical time. EndTime must not be before StartTime; a zero
// length window means the end value applies as soon as the window opens.
type Transform struct {
	Property   Property
	StartTime  float64
	EndTime    float64
	StartValue Value
	EndValue   Value
	Easing     easing.Easing

	repeating   bool
	repeatDelay float64
}

// Duration is the length of the transform's window.
func (t *Transform) Duration() float64 {
	return t.EndTime - t.StartTime
}

// Progress returns the eased fraction of the window elapsed at time.
func (t *Transform) Progress(time float64) float64 {
	return easing.Apply(t.Easing, t.linearProgress(time))
}

func (t *Transform) linearProgress(time float64) float64 {
	if t.EndTime == t.StartTime {
		if time < t.StartTime {
			return 0
		}
		return 1
	}
	return math.Max(0, math.Min(1, (time-t.StartTime)/(t.EndTime-t.StartTime)))
}

// CurrentValue returns the interpolated value at time. The window's edges
// yield the start and end values exactly.
func (t *Transform) CurrentValue(time float64) Value {
	p := t.linearProgress(time)
	switch p {
	case 0:
		return t.StartValue
	case 1:
		return t.EndValue
	}
	return t.StartValue.Interpolate(t.EndValue, easing.Apply(t.Easing, p))
}

// Apply writes the value at time to the transform's property on d.
func (t *Transform) Apply(d *Drawable, time float64) {
	d.set(t.Property, t.CurrentValue(time))
}

// Shift moves the window by offset.
func (t *Transform) Shift(offset float64) {
	t.StartTime += offset
	t.EndTime += offset
}

// Loop moves the window forward so that it begins delay after the current
// one ends. Negative delays are treated as zero.
func (t *Transform) Loop(delay float64) {
	t.Shift(t.Duration() + math.Max(0, delay))
}

// Repeat marks the transform to loop with the given delay every time it
// completes during an update pass.
func (t *Transform) Repeat(delay float64) {
	t.repeating = true
	t.repeatDelay = math.Max(0, delay)
}

// IsRepeating reports whether Repeat has been called.
func (t *Transform) IsRepeating() bool {
	return t.repeating
}

// RepeatDelay is the gap between repeats.
func (t *Transform) RepeatDelay() float64 {
	return t.repeatDelay
}

func (t *Transform) String() string {
	return fmt.Sprintf("%s %s->%s [%g, %g] %s", t.Property, t.StartValue, t.EndValue, t.StartTime, t.EndTime, t.Easing)
}

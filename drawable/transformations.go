package drawable

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/matt-g-everett/drawtx/easing"
)

// expiryNudge keeps a node alive for one more millisecond after its last
// transform ends so the final state is drawn before removal.
const expiryNudge = 1.0

// PendingDelay is the offset, in milliseconds, added to the start time of
// transforms created from now on.
func (d *Drawable) PendingDelay() float64 {
	return d.transformationDelay
}

// Delay pushes the start of subsequently created transforms back by duration.
// Calls accumulate until DelayReset.
func (d *Drawable) Delay(duration time.Duration) {
	d.delay(milliseconds(duration))
}

func (d *Drawable) delay(ms float64) {
	if ms == 0 {
		return
	}
	d.transformationDelay += ms
}

// DelayReset removes any pending delay.
func (d *Drawable) DelayReset() {
	d.delay(-d.transformationDelay)
}

// ClearTransformations drops every queued transform and resets the delay.
func (d *Drawable) ClearTransformations() {
	d.DelayReset()
	d.transforms.Clear()
}

// Flush applies the final state of every queued transform, ignoring the
// current time, then clears the queue.
func (d *Drawable) Flush() {
	d.mustBeLoaded()

	if d.transforms.Len() > 0 {
		now := d.Time()
		offset := now - d.transforms.MaxEndTime() - 1
		for _, t := range d.transforms.items {
			t.Shift(offset)
			t.Apply(d, now)
		}
	}

	d.ClearTransformations()
}

// Loop makes every queued transform repeat. Each repeat starts the pending
// delay plus delay after the previous one started, but never before the
// previous one has ended.
func (d *Drawable) Loop(delay time.Duration) {
	period := d.transformationDelay + milliseconds(delay)
	for _, t := range d.transforms.items {
		t.Repeat(math.Max(0, period-t.Duration()))
	}
}

// Expire sets LifetimeEnd to when the last queued transform has finished, or
// to the end of the pending delay if that is later. With calculateStart it
// also sets LifetimeStart to the earliest queued start time.
func (d *Drawable) Expire(calculateStart bool) {
	now := d.Time()

	end := now + d.transformationDelay
	if d.transforms.Len() > 0 {
		end = math.Max(end, d.transforms.MaxEndTime()+expiryNudge)
	}
	d.LifetimeEnd = end

	if calculateStart {
		if d.transforms.Len() > 0 {
			d.LifetimeStart = d.transforms.MinStartTime()
		} else {
			d.LifetimeStart = math.Inf(-1)
		}
	}
}

// TimeWarp shifts every queued transform by change milliseconds.
func (d *Drawable) TimeWarp(change float64) {
	if change == 0 {
		return
	}
	d.transforms.Shift(change)
}

// Show makes the Drawable fully opaque immediately.
func (d *Drawable) Show() {
	d.FadeTo(1, 0, easing.None)
}

// Hide makes the Drawable fully transparent immediately.
func (d *Drawable) Hide() {
	d.FadeTo(0, 0, easing.None)
}

// FadeIn fades to full opacity.
func (d *Drawable) FadeIn(duration time.Duration, e easing.Easing) *Transform {
	return d.FadeTo(1, duration, e)
}

// FadeOut fades to full transparency.
func (d *Drawable) FadeOut(duration time.Duration, e easing.Easing) *Transform {
	return d.FadeTo(0, duration, e)
}

// FadeInFromZero fades from fully transparent to fully opaque. Without a
// pending delay the Drawable is made transparent first and any fade in
// progress is dropped.
func (d *Drawable) FadeInFromZero(duration time.Duration, e easing.Easing) *Transform {
	return d.fadeFrom(0, 1, duration, e)
}

// FadeOutFromOne fades from fully opaque to fully transparent. Without a
// pending delay the Drawable is made opaque first and any fade in progress is
// dropped.
func (d *Drawable) FadeOutFromOne(duration time.Duration, e easing.Easing) *Transform {
	return d.fadeFrom(1, 0, duration, e)
}

func (d *Drawable) fadeFrom(from, to float64, duration time.Duration, e easing.Easing) *Transform {
	d.mustBeLoaded()

	if d.transformationDelay == 0 {
		d.Alpha = from
		d.transforms.RemoveAll(Alpha)
	}

	return d.schedule(Alpha, ScalarValue(from), ScalarValue(to), duration, e)
}

// FadeTo animates opacity.
func (d *Drawable) FadeTo(alpha float64, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(Alpha, ScalarValue(alpha), duration, e)
}

// RotateTo animates rotation.
func (d *Drawable) RotateTo(rotation float64, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(Rotation, ScalarValue(rotation), duration, e)
}

// MoveToX animates the horizontal position only.
func (d *Drawable) MoveToX(x float64, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(PositionX, ScalarValue(x), duration, e)
}

// MoveToY animates the vertical position only.
func (d *Drawable) MoveToY(y float64, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(PositionY, ScalarValue(y), duration, e)
}

// MoveTo animates position.
func (d *Drawable) MoveTo(position mgl64.Vec2, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(Position, VectorValue(position), duration, e)
}

// MoveToRelative moves by offset from where the Drawable is heading: the end
// of the last queued move if there is one, otherwise its current position.
func (d *Drawable) MoveToRelative(offset mgl64.Vec2, duration time.Duration, e easing.Easing) *Transform {
	d.mustBeLoaded()
	d.updateTransformsOf(Position)

	base := d.Position
	if last := d.transforms.FindLast(Position); last != nil {
		base = last.EndValue.Vector()
	}
	return d.MoveTo(base.Add(offset), duration, e)
}

// ScaleTo animates scale uniformly on both axes.
func (d *Drawable) ScaleTo(scale float64, duration time.Duration, e easing.Easing) *Transform {
	return d.ScaleToVector(mgl64.Vec2{scale, scale}, duration, e)
}

// ScaleToVector animates scale per axis.
func (d *Drawable) ScaleToVector(scale mgl64.Vec2, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(Scale, VectorValue(scale), duration, e)
}

// FadeColour animates the tint colour.
func (d *Drawable) FadeColour(colour Colour, duration time.Duration, e easing.Easing) *Transform {
	return d.transformTo(Tint, ColourValue(colour), duration, e)
}

// FlashColour jumps the tint to flash and fades back to the colour the
// Drawable was heading to. It cannot be combined with a pending delay.
func (d *Drawable) FlashColour(flash Colour, duration time.Duration, e easing.Easing) *Transform {
	d.mustBeLoaded()
	if d.transformationDelay != 0 {
		panic("drawable: FlashColour does not support a pending delay")
	}
	d.updateTransformsOf(Tint)

	original := d.Colour
	if last := d.transforms.FindLast(Tint); last != nil {
		original = last.EndValue.Colour()
	}
	d.transforms.RemoveAll(Tint)

	return d.schedule(Tint, ColourValue(flash), ColourValue(original), duration, e)
}

// transformTo is the shared path of the property helpers. With no pending
// delay it replaces any transform of p and does nothing when p already holds
// target. With a delay it continues from the end of the last queued transform
// of p. It returns nil when nothing was scheduled.
func (d *Drawable) transformTo(p Property, target Value, duration time.Duration, e easing.Easing) *Transform {
	d.mustBeLoaded()
	d.updateTransformsOf(p)

	start := d.get(p)
	if d.transformationDelay == 0 {
		d.transforms.RemoveAll(p)
		if start.Equal(target) {
			return nil
		}
	} else if last := d.transforms.FindLast(p); last != nil {
		start = last.EndValue
	}

	return d.schedule(p, start, target, duration, e)
}

// schedule creates a transform starting after the pending delay. Zero length
// transforms that are already due apply at once and are not queued.
func (d *Drawable) schedule(p Property, start, end Value, duration time.Duration, e easing.Easing) *Transform {
	if duration < 0 {
		panic("drawable: negative duration " + duration.String())
	}

	now := d.Time()
	startTime := now + d.transformationDelay
	t := &Transform{
		Property:   p,
		StartTime:  startTime,
		EndTime:    startTime + milliseconds(duration),
		StartValue: start,
		EndValue:   end,
		Easing:     e,
	}

	if duration == 0 && startTime <= now {
		t.Apply(d, now)
	} else {
		d.transforms.Add(t)
	}
	return t
}

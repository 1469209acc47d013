package stream

// An Animation produces the frame to show at a point in time.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

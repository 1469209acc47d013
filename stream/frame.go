package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/drawtx/drawable"
)

// NodeState is the visible state of one drawable at the time of a frame.
type NodeState struct {
	Name     string         `json:"name"`
	Alpha    float64        `json:"alpha"`
	Rotation float64        `json:"rotation"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	ScaleX   float64        `json:"scaleX"`
	ScaleY   float64        `json:"scaleY"`
	Colour   colorful.Color `json:"colour"`
	Tint     float64        `json:"tintAlpha"`
}

// Frame is a snapshot of every drawable in a scene.
type Frame struct {
	RuntimeMs int64       `json:"runtimeMs"`
	Nodes     []NodeState `json:"nodes"`
}

// NewFrame captures the current state of nodes.
func NewFrame(runtimeMs int64, nodes []*drawable.Drawable) *Frame {
	f := new(Frame)
	f.RuntimeMs = runtimeMs
	f.Nodes = make([]NodeState, 0, len(nodes))
	for _, n := range nodes {
		f.Nodes = append(f.Nodes, NodeState{
			Name:     n.Name,
			Alpha:    n.Alpha,
			Rotation: n.Rotation,
			X:        n.Position.X(),
			Y:        n.Position.Y(),
			ScaleX:   n.Scale.X(),
			ScaleY:   n.Scale.Y(),
			Colour:   n.Colour.Color,
			Tint:     n.Colour.A,
		})
	}
	return f
}

const nodeStateSize = 6*4 + 4

// MarshalBinary encodes the frame as little endian: the runtime, a node
// count, then per node a length-prefixed name, six float32 values and RGBA
// bytes.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 10, 10+len(f.Nodes)*(nodeStateSize+16))
	binary.LittleEndian.PutUint64(data, uint64(f.RuntimeMs))
	binary.LittleEndian.PutUint16(data[8:], uint16(len(f.Nodes)))

	for _, n := range f.Nodes {
		name := n.Name
		if len(name) > math.MaxUint8 {
			name = name[:math.MaxUint8]
		}
		data = append(data, byte(len(name)))
		data = append(data, name...)

		for _, v := range []float64{n.Alpha, n.Rotation, n.X, n.Y, n.ScaleX, n.ScaleY} {
			data = appendFloat32(data, v)
		}

		r, g, b := n.Colour.Clamped().RGB255()
		data = append(data, r, g, b, unitByte(n.Tint))
	}

	return data, nil
}

func appendFloat32(data []byte, v float64) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	return append(data, buf[:]...)
}

func unitByte(v float64) byte {
	return byte(math.Max(0, math.Min(1, v))*255.0 + 0.5)
}

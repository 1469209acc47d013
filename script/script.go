// Package script reads animation choreographies from YAML and plays them onto
// drawables through the drawable helper API.
//
// A script lists nodes with their initial state and an ordered list of steps:
//
//	nodes:
//	  - name: logo
//	    alpha: 0
//	    position: [100, 100]
//	    steps:
//	      - {op: fadeIn, duration: 500ms, easing: outQuad}
//	      - {op: delay, duration: 1s}
//	      - {op: moveToRelative, vector: [0, -20], duration: 250ms}
//	      - {op: expire}
package script

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/matt-g-everett/drawtx/drawable"
	"github.com/matt-g-everett/drawtx/easing"
	"github.com/matt-g-everett/drawtx/scene"
	"github.com/matt-g-everett/drawtx/util"
	"gopkg.in/yaml.v2"
)

// Script is a set of nodes to create and animate.
type Script struct {
	Nodes []Node `yaml:"nodes"`
}

// Node describes one drawable and its steps.
type Node struct {
	Name     string    `yaml:"name"`
	Alpha    *float64  `yaml:"alpha"`
	Rotation float64   `yaml:"rotation"`
	Position []float64 `yaml:"position"`
	Scale    []float64 `yaml:"scale"`
	Colour   string    `yaml:"colour"`
	Steps    []Step    `yaml:"steps"`
}

// Step is one call on the drawable API. Which fields are read depends on Op.
type Step struct {
	Op             string        `yaml:"op"`
	Value          float64       `yaml:"value"`
	Vector         []float64     `yaml:"vector"`
	Colour         string        `yaml:"colour"`
	Duration       string        `yaml:"duration"`
	Easing         easing.Easing `yaml:"easing"`
	CalculateStart bool          `yaml:"calculateStart"`
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	s := new(Script)
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, n := range s.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("parse script: node %d has no name", i)
		}
	}
	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return Parse(data)
}

// Build creates every node, adds it to sc and plays its steps.
func (s *Script) Build(sc *scene.Scene) ([]*drawable.Drawable, error) {
	built := make([]*drawable.Drawable, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		d, err := n.create()
		if err != nil {
			return built, err
		}
		sc.Add(d)
		if err := Play(d, n.Steps); err != nil {
			return built, fmt.Errorf("node %s: %w", n.Name, err)
		}
		built = append(built, d)
	}
	return built, nil
}

func (n Node) create() (*drawable.Drawable, error) {
	d := drawable.New(n.Name)
	if n.Alpha != nil {
		d.Alpha = *n.Alpha
	}
	d.Rotation = n.Rotation

	if n.Position != nil {
		v, err := vector(n.Position, false)
		if err != nil {
			return nil, fmt.Errorf("node %s: position: %w", n.Name, err)
		}
		d.Position = v
	}
	if n.Scale != nil {
		v, err := vector(n.Scale, true)
		if err != nil {
			return nil, fmt.Errorf("node %s: scale: %w", n.Name, err)
		}
		d.Scale = v
	}
	if n.Colour != "" {
		c, err := util.ParseColour(n.Colour)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.Name, err)
		}
		d.Colour = c
	}
	return d, nil
}

// Play runs steps against a loaded drawable in order.
func Play(d *drawable.Drawable, steps []Step) error {
	for i, step := range steps {
		if err := step.apply(d); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

func (s Step) apply(d *drawable.Drawable) error {
	duration, err := s.duration()
	if err != nil {
		return err
	}

	switch s.Op {
	case "show":
		d.Show()
	case "hide":
		d.Hide()
	case "fadeTo":
		d.FadeTo(s.Value, duration, s.Easing)
	case "fadeIn":
		d.FadeIn(duration, s.Easing)
	case "fadeOut":
		d.FadeOut(duration, s.Easing)
	case "fadeInFromZero":
		d.FadeInFromZero(duration, s.Easing)
	case "fadeOutFromOne":
		d.FadeOutFromOne(duration, s.Easing)
	case "rotateTo":
		d.RotateTo(s.Value, duration, s.Easing)
	case "moveToX":
		d.MoveToX(s.Value, duration, s.Easing)
	case "moveToY":
		d.MoveToY(s.Value, duration, s.Easing)
	case "moveTo", "moveToRelative":
		v, err := vector(s.Vector, false)
		if err != nil {
			return err
		}
		if s.Op == "moveTo" {
			d.MoveTo(v, duration, s.Easing)
		} else {
			d.MoveToRelative(v, duration, s.Easing)
		}
	case "scaleTo":
		if s.Vector == nil {
			d.ScaleTo(s.Value, duration, s.Easing)
			break
		}
		v, err := vector(s.Vector, true)
		if err != nil {
			return err
		}
		d.ScaleToVector(v, duration, s.Easing)
	case "fadeColour", "flashColour":
		c, err := util.ParseColour(s.Colour)
		if err != nil {
			return err
		}
		if s.Op == "fadeColour" {
			d.FadeColour(c, duration, s.Easing)
			break
		}
		if d.PendingDelay() != 0 {
			return fmt.Errorf("flashColour cannot follow a delay")
		}
		d.FlashColour(c, duration, s.Easing)
	case "delay":
		d.Delay(duration)
	case "delayReset":
		d.DelayReset()
	case "loop":
		d.Loop(duration)
	case "expire":
		d.Expire(s.CalculateStart)
	case "flush":
		d.Flush()
	case "clear":
		d.ClearTransformations()
	default:
		return fmt.Errorf("unknown op")
	}
	return nil
}

func (s Step) duration() (time.Duration, error) {
	if s.Duration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		return 0, err
	}
	if d < 0 && s.Op != "delay" {
		return 0, fmt.Errorf("negative duration %s", s.Duration)
	}
	return d, nil
}

// vector reads [x, y]. A single element is accepted for uniform values.
func vector(v []float64, uniform bool) (mgl64.Vec2, error) {
	switch {
	case len(v) == 2:
		return mgl64.Vec2{v[0], v[1]}, nil
	case len(v) == 1 && uniform:
		return mgl64.Vec2{v[0], v[0]}, nil
	}
	return mgl64.Vec2{}, fmt.Errorf("expected [x, y], got %v", v)
}

package stream

import (
	"fmt"
	"log"

	"github.com/matt-g-everett/drawtx/drawable"
	"github.com/matt-g-everett/drawtx/scene"
	"github.com/matt-g-everett/drawtx/script"
)

// A Command is a list of steps to play onto a named node, received from
// outside the update loop.
type Command struct {
	Node  string        `yaml:"node"`
	Steps []script.Step `yaml:"steps"`
}

// Controller owns the scene and is the only place it is mutated. Commands are
// queued and played at the start of the next frame.
type Controller struct {
	clock    *drawable.ManualClock
	scene    *scene.Scene
	script   *script.Script
	commands chan Command
	cycles   int
}

// NewController creates a Controller and builds the script at runtimeMs.
func NewController(s *script.Script, runtimeMs int64) (*Controller, error) {
	c := new(Controller)
	c.clock = drawable.NewManualClock(float64(runtimeMs))
	c.scene = scene.New(c.clock)
	c.script = s
	c.commands = make(chan Command, 64)

	if err := c.cycleAnimation(); err != nil {
		return nil, err
	}
	return c, nil
}

// Scene returns the scene driven by the controller.
func (c *Controller) Scene() *scene.Scene {
	return c.scene
}

// Cycles is the number of times the script has been built.
func (c *Controller) Cycles() int {
	return c.cycles
}

// Enqueue hands a command to the update loop. It reports false when the
// queue is full and the command was dropped.
func (c *Controller) Enqueue(cmd Command) bool {
	select {
	case c.commands <- cmd:
		return true
	default:
		return false
	}
}

// CalculateFrame advances the scene to runtimeMs and snapshots it. When every
// node has expired the script is built again.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.clock.Set(float64(runtimeMs))
	c.runCommands()
	c.scene.Update()

	if c.scene.Len() == 0 && len(c.script.Nodes) > 0 {
		if err := c.cycleAnimation(); err != nil {
			log.Println(err)
		}
	}

	return NewFrame(runtimeMs, c.scene.Nodes())
}

func (c *Controller) runCommands() {
	for {
		select {
		case cmd := <-c.commands:
			d := c.scene.Find(cmd.Node)
			if d == nil {
				log.Printf("Command for unknown node %s", cmd.Node)
				continue
			}
			if err := script.Play(d, cmd.Steps); err != nil {
				log.Printf("Command for %s: %v", cmd.Node, err)
			}
		default:
			return
		}
	}
}

func (c *Controller) cycleAnimation() error {
	c.cycles++
	if _, err := c.script.Build(c.scene); err != nil {
		return fmt.Errorf("cycle %d: %w", c.cycles, err)
	}
	log.Printf("Cycle %d: %d nodes", c.cycles, c.scene.Len())
	return nil
}

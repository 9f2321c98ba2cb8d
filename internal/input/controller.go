// Package input maps keyboard events onto changes to the shape transform.
package input

import (
	"go.uber.org/zap"

	"github.com/paperboard/polyhedron/internal/transform"
)

// Steps is how far one key event moves, turns or scales the shape.
type Steps struct {
	Translate float32 // world units
	Rotate    float32 // degrees
	Scale     float32
}

func DefaultSteps() Steps {
	return Steps{Translate: 0.1, Rotate: 1, Scale: 0.01}
}

// Controller applies bound actions to a transform.State.
type Controller struct {
	state    *transform.State
	bindings Bindings
	steps    Steps
	log      *zap.Logger
	quit     bool
}

func NewController(state *transform.State, bindings Bindings, steps Steps, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		state:    state,
		bindings: bindings,
		steps:    steps,
		log:      log,
	}
}

// Rebind swaps bindings and step sizes, e.g. after a configuration reload.
func (c *Controller) Rebind(bindings Bindings, steps Steps) {
	c.bindings = bindings
	c.steps = steps
	c.log.Info("key bindings updated", zap.Int("bindings", len(bindings)))
}

// QuitRequested reports whether a Quit action has been seen.
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// HandleKey applies the action bound to k. Press and Repeat act, Release
// does not. It returns the action taken.
func (c *Controller) HandleKey(k Key, kind EventKind) Action {
	if kind == Release {
		return ActionNone
	}
	a, ok := c.bindings[k]
	if !ok {
		return ActionNone
	}
	c.Apply(a)
	return a
}

func (c *Controller) Apply(a Action) {
	st := c.steps
	switch a {
	case MoveUp:
		c.state.Translate(0, st.Translate)
	case MoveDown:
		c.state.Translate(0, -st.Translate)
	case MoveRight:
		c.state.Translate(st.Translate, 0)
	case MoveLeft:
		c.state.Translate(-st.Translate, 0)
	case RotateXPos:
		c.rotate(transform.AxisX, st.Rotate)
	case RotateXNeg:
		c.rotate(transform.AxisX, -st.Rotate)
	case RotateYPos:
		c.rotate(transform.AxisY, st.Rotate)
	case RotateYNeg:
		c.rotate(transform.AxisY, -st.Rotate)
	case RotateZPos:
		c.rotate(transform.AxisZ, st.Rotate)
	case RotateZNeg:
		c.rotate(transform.AxisZ, -st.Rotate)
	case Grow:
		c.state.Grow(st.Scale)
	case Shrink:
		c.state.Grow(-st.Scale)
	case Reset:
		c.state.Reset()
		c.log.Debug("transform reset")
	case Quit:
		c.quit = true
	}
}

func (c *Controller) rotate(axis transform.Axis, deg float32) {
	v := c.state.Rotate(axis, deg)
	c.log.Debug("rotation changed", zap.Stringer("axis", axis), zap.Float32("degrees", v))
}

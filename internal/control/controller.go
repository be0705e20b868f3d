// Package control implements the interaction state machine: it consumes
// input events, mutates the view (pan/zoom) and the grid (manual toggles),
// and gates the simulation ticks. It owns the run state and the ephemeral
// drag state; nothing else mutates them.
package control

import (
	"time"

	"github.com/dkoval/cellscope/internal/core"
	"github.com/dkoval/cellscope/internal/life"
	"github.com/dkoval/cellscope/internal/view"
)

// RunState says whether scheduled generation steps fire. Manual cell
// toggles are accepted only while paused.
type RunState int

const (
	Paused RunState = iota
	Running
)

// String returns a display name for the run state.
func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// KeyPanStep is the screen-pixel distance one keyboard pan press moves.
const KeyPanStep = 40.0

// dragState captures the pan and pointer at drag start. Pan during the
// drag is recomputed from these origins on every motion event, never
// accumulated, so it cannot drift.
type dragState struct {
	active     bool
	panX, panY float64
	px, py     float64
}

// Controller drives the grid and view from input events and a tick clock.
type Controller struct {
	grid *life.Grid
	view *view.View
	seed [][2]int // offsets restamped by ActionReseed

	state    RunState
	drag     dragState
	interval time.Duration
	lastStep time.Time

	screenW, screenH int
	pointerX         float64
	pointerY         float64
}

// New creates a controller in the Running state. interval is the minimum
// wall-clock time between generation steps while running.
func New(g *life.Grid, v *view.View, seed [][2]int, interval time.Duration, screenW, screenH int) *Controller {
	return &Controller{
		grid:     g,
		view:     v,
		seed:     seed,
		state:    Running,
		interval: interval,
		lastStep: time.Now(),
		screenW:  screenW,
		screenH:  screenH,
	}
}

// RunState returns the current run state.
func (c *Controller) RunState() RunState {
	return c.state
}

// Dragging reports whether a primary-button drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// SetScreenSize updates the pixel dimensions used for view math. Called
// when the presentation surface resizes.
func (c *Controller) SetScreenSize(w, h int) {
	c.screenW = w
	c.screenH = h
}

// Handle dispatches one input event. Every boundary condition (off-board
// toggle, zoom at the floor, secondary click while running) is a silent
// no-op.
func (c *Controller) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventPointerPress:
		c.pointerX, c.pointerY = ev.X, ev.Y
		switch ev.Button {
		case core.ButtonPrimary:
			c.drag = dragState{
				active: true,
				panX:   c.view.PanX,
				panY:   c.view.PanY,
				px:     ev.X,
				py:     ev.Y,
			}
		case core.ButtonSecondary:
			if c.state != Paused {
				return
			}
			if x, y, ok := c.view.Pick(ev.X, ev.Y, c.screenW, c.screenH); ok {
				c.grid.Toggle(x, y)
			}
		}

	case core.EventPointerRelease:
		if ev.Button == core.ButtonPrimary {
			c.drag = dragState{}
		}

	case core.EventPointerMove:
		c.pointerX, c.pointerY = ev.X, ev.Y
		if c.drag.active {
			c.view.PanX = c.drag.panX + (c.drag.px-ev.X)/c.view.Zoom
			c.view.PanY = c.drag.panY + (c.drag.py-ev.Y)/c.view.Zoom
		}

	case core.EventScroll:
		c.view.ZoomAt(ev.X, ev.Y, c.screenW, c.screenH, ev.Delta)

	case core.EventKey:
		c.handleAction(ev.Action)
	}
}

// handleAction applies a keyboard action. Edit actions (step, clear,
// reseed) follow the same paused-only policy as manual toggles.
func (c *Controller) handleAction(a core.Action) {
	switch a {
	case core.ActionPause:
		if c.state == Running {
			c.state = Paused
		} else {
			c.state = Running
		}
	case core.ActionStepOnce:
		if c.state == Paused {
			c.grid.Step()
		}
	case core.ActionClear:
		if c.state == Paused {
			c.grid.Clear()
		}
	case core.ActionReseed:
		if c.state == Paused {
			c.grid.Seed(c.seed)
		}
	case core.ActionPanLeft:
		c.view.PanBy(-KeyPanStep, 0)
	case core.ActionPanRight:
		c.view.PanBy(KeyPanStep, 0)
	case core.ActionPanUp:
		c.view.PanBy(0, -KeyPanStep)
	case core.ActionPanDown:
		c.view.PanBy(0, KeyPanStep)
	case core.ActionZoomIn:
		c.view.ZoomAt(float64(c.screenW)/2, float64(c.screenH)/2, c.screenW, c.screenH, +1)
	case core.ActionZoomOut:
		c.view.ZoomAt(float64(c.screenW)/2, float64(c.screenH)/2, c.screenW, c.screenH, -1)
	}
}

// Tick advances the automaton if running and the step interval has
// elapsed since the last step. Returns whether a generation fired. The
// clock starts at construction, so the first step comes one full
// interval in. The caller polls this once per frame; there is no
// preemptive timer.
func (c *Controller) Tick(now time.Time) bool {
	if c.state != Running {
		return false
	}
	if now.Sub(c.lastStep) < c.interval {
		return false
	}
	c.lastStep = now
	c.grid.Step()
	return true
}

// Package input turns a per-frame input snapshot into viewport changes.
//
// Backends (raylib, Bubble Tea) fill a [State] each frame; a [Controller]
// applies it to the viewport the main loop owns.
package input

import (
	"fmt"
	"strings"

	"github.com/san-kum/plotlab/internal/plot"
)

const (
	DefaultScrollMult = 3.0
	DefaultPanStep    = 100.0
)

// Keys is a set of arrow keys that went down this frame.
type Keys uint8

const (
	KeyLeft Keys = 1 << iota
	KeyRight
	KeyUp
	KeyDown
)

func (k Keys) Has(key Keys) bool { return k&key != 0 }

// State is one frame of input. Pressed and key fields are edges (true only
// on the frame the button or key went down); Down is level.
type State struct {
	Mouse   plot.Vec2 // canvas pixels
	Pressed bool
	Down    bool
	Wheel   float64
	Keys    Keys
}

// Controller mutates the viewport in response to input.
type Controller interface {
	Apply(v *plot.Viewport, s State)
}

// Drag pans while the primary button is held and zooms on scroll.
type Drag struct {
	ScrollMult float64
	start      plot.Vec2
}

func NewDrag(scrollMult float64) *Drag {
	return &Drag{ScrollMult: scrollMult}
}

func (d *Drag) Apply(v *plot.Viewport, s State) {
	if s.Pressed {
		d.start = s.Mouse
	}
	if s.Down {
		v.Pan(s.Mouse.Sub(d.start))
		d.start = s.Mouse
	}
	if s.Wheel != 0 {
		v.Zoom(s.Wheel * d.ScrollMult)
	}
}

// Arrows moves the origin a fixed step per discrete arrow key press.
type Arrows struct {
	Step float64
}

func NewArrows(step float64) *Arrows {
	return &Arrows{Step: step}
}

func (a *Arrows) Apply(v *plot.Viewport, s State) {
	var d plot.Vec2
	if s.Keys.Has(KeyRight) {
		d.X += a.Step
	}
	if s.Keys.Has(KeyLeft) {
		d.X -= a.Step
	}
	if s.Keys.Has(KeyDown) {
		d.Y += a.Step
	}
	if s.Keys.Has(KeyUp) {
		d.Y -= a.Step
	}
	v.Pan(d)
}

// Chain applies several controllers in order.
type Chain []Controller

func (c Chain) Apply(v *plot.Viewport, s State) {
	for _, ctrl := range c {
		ctrl.Apply(v, s)
	}
}

// Mode selects which controllers a frontend wires up.
type Mode string

const (
	ModeDrag Mode = "drag"
	ModeKeys Mode = "keys"
	ModeBoth Mode = "both"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDrag, ModeKeys, ModeBoth:
		return m, nil
	default:
		return "", fmt.Errorf("input: unknown mode %q (want drag, keys or both)", s)
	}
}

// New builds the controller for mode.
func New(mode Mode, scrollMult, panStep float64) (Controller, error) {
	switch mode {
	case ModeDrag:
		return NewDrag(scrollMult), nil
	case ModeKeys:
		return NewArrows(panStep), nil
	case ModeBoth:
		return Chain{NewDrag(scrollMult), NewArrows(panStep)}, nil
	default:
		return nil, fmt.Errorf("input: unknown mode %q", mode)
	}
}

// This file is part of Keybee.
//
// Keybee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Keybee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Keybee.  If not, see <https://www.gnu.org/licenses/>.

package sdlinput

import (
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Default values for the Translator fields.
const (
	DefaultWheelScale = 1.0
	DefaultThreshold  = 0.5
)

// Translator converts SDL events to userinput events. It remembers the state
// of the gamepad so that sticks can be reported as a whole and so that
// digital edges are only sent when they change.
//
// A Translator must not be used from more than one goroutine at a time. SDL
// events are usually polled on the main thread so this is rarely a concern.
type Translator struct {
	// WheelScale multiplies the mouse wheel movement.
	WheelScale float32

	// Threshold is how far a stick or trigger must be moved before its
	// digital button is pressed.
	Threshold float32

	// the most recent value of each gamepad axis
	axes map[buttons.GamepadAxis1D]float32

	// digital state of gamepad buttons that are derived from axes and the
	// dpad buttons, which are used to derive the dpad axes
	down map[buttons.GamepadButton]bool
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator() *Translator {
	return &Translator{
		WheelScale: DefaultWheelScale,
		Threshold:  DefaultThreshold,
		axes:       make(map[buttons.GamepadAxis1D]float32),
		down:       make(map[buttons.GamepadButton]bool),
	}
}

// Translate converts a single SDL event into zero or more userinput events.
func (tr *Translator) Translate(ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		k, ok := keys[ev.Keysym.Scancode]
		if !ok {
			return nil
		}
		return []userinput.Event{edge(k.Button(), ev.Type == sdl.KEYDOWN)}

	case *sdl.MouseButtonEvent:
		b, ok := mouseButton(ev.Button)
		if !ok {
			return nil
		}
		return []userinput.Event{edge(b.Button(), ev.Type == sdl.MOUSEBUTTONDOWN)}

	case *sdl.MouseMotionEvent:
		return []userinput.Event{
			userinput.MouseMotion{X: float32(ev.XRel), Y: float32(ev.YRel)},
			userinput.CursorMoved{X: float32(ev.X), Y: float32(ev.Y)},
		}

	case *sdl.MouseWheelEvent:
		x := float32(ev.X) * tr.WheelScale
		y := float32(ev.Y) * tr.WheelScale
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		if x == 0 && y == 0 {
			return nil
		}
		return []userinput.Event{userinput.MouseWheel{X: x, Y: y}}

	case *sdl.ControllerButtonEvent:
		b, ok := controllerButton(sdl.GameControllerButton(ev.Button))
		if !ok {
			return nil
		}
		down := ev.Type == sdl.CONTROLLERBUTTONDOWN
		evs := []userinput.Event{edge(b.Button(), down)}
		switch b {
		case buttons.GamepadDpadUp, buttons.GamepadDpadDown, buttons.GamepadDpadLeft, buttons.GamepadDpadRight:
			tr.down[b] = down
			evs = append(evs, tr.dpad()...)
		}
		return evs

	case *sdl.ControllerAxisEvent:
		a, ok := controllerAxis(sdl.GameControllerAxis(ev.Axis))
		if !ok {
			return nil
		}
		return tr.axis(a, normalise(ev.Value))
	}

	return nil
}

func edge(b buttons.Button, down bool) userinput.Event {
	if down {
		return userinput.ButtonPressed{Button: b}
	}
	return userinput.ButtonReleased{Button: b}
}

// SDL axes are in the range -32768 to 32767
func normalise(v int16) float32 {
	return max(float32(v)/32767, -1)
}

func (tr *Translator) axis(a buttons.GamepadAxis1D, v float32) []userinput.Event {
	tr.axes[a] = v
	evs := []userinput.Event{userinput.Axis1DChanged{Axis: a.Axis(), Value: v}}

	if p, _, ok := a.Axis().Parent(); ok {
		x, y, _ := p.Components()
		evs = append(evs, userinput.Axis2DChanged{
			Axis:  p,
			Value: [2]float32{tr.axes[buttons.GamepadAxis1D(x.Code)], tr.axes[buttons.GamepadAxis1D(y.Code)]},
		})
	}

	if d, ok := digitalAxes[a]; ok {
		if d.hasNeg {
			evs = append(evs, tr.digital(d.neg, v < -tr.Threshold)...)
		}
		evs = append(evs, tr.digital(d.pos, v > tr.Threshold)...)
	}

	return evs
}

// digital returns an edge event if the button has changed state
func (tr *Translator) digital(b buttons.GamepadButton, down bool) []userinput.Event {
	if tr.down[b] == down {
		return nil
	}
	tr.down[b] = down
	return []userinput.Event{edge(b.Button(), down)}
}

// the dpad axes from the state of the dpad buttons
func (tr *Translator) dpad() []userinput.Event {
	var x, y float32
	if tr.down[buttons.GamepadDpadLeft] {
		x--
	}
	if tr.down[buttons.GamepadDpadRight] {
		x++
	}
	if tr.down[buttons.GamepadDpadUp] {
		y--
	}
	if tr.down[buttons.GamepadDpadDown] {
		y++
	}
	return []userinput.Event{
		userinput.Axis1DChanged{Axis: buttons.GamepadDpadX.Axis(), Value: x},
		userinput.Axis1DChanged{Axis: buttons.GamepadDpadY.Axis(), Value: y},
	}
}

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

package state

import (
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/userinput"
)

// ButtonState is the state of a single button for the current frame. The zero
// value is a button that is up and has been up for at least one frame.
type ButtonState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Input accumulates events over the course of a frame and answers queries
// about the state of the devices. The frame ends with a call to EndUpdate().
//
// Input is not safe for concurrent use. The session package provides the
// locking.
type Input struct {
	// buttons that are currently down or that have changed this frame. a
	// button that is not in the map has a zero ButtonState
	buttons map[buttons.Button]ButtonState

	// the most recent value reported for each device axis
	axes1D map[buttons.Axis1D]float32
	axes2D map[buttons.Axis2D][2]float32

	// relative values accumulated over the frame
	mouseMotion [2]float32
	mouseWheel  [2]float32

	// absolute cursor position as reported by the platform and the viewport
	// offset that is subtracted from it when queried
	cursor   [2]float32
	viewport [2]float32
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		buttons: make(map[buttons.Button]ButtonState),
		axes1D:  make(map[buttons.Axis1D]float32),
		axes2D:  make(map[buttons.Axis2D][2]float32),
	}
}

// HandleEvent updates the state with the event.
//
// The press and release edges are independent. A button that is pressed and
// released in the same frame will be both JustPressed and JustReleased until
// the end of the frame.
func (st *Input) HandleEvent(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.ButtonPressed:
		s := st.buttons[ev.Button]
		s.Pressed = true
		s.JustPressed = true
		st.buttons[ev.Button] = s

	case userinput.ButtonReleased:
		s := st.buttons[ev.Button]
		s.Pressed = false
		s.JustReleased = true
		st.buttons[ev.Button] = s

	case userinput.Axis1DChanged:
		st.axes1D[ev.Axis] = ev.Value

	case userinput.Axis2DChanged:
		st.axes2D[ev.Axis] = ev.Value

	case userinput.CursorMoved:
		st.cursor = [2]float32{ev.X, ev.Y}

	case userinput.MouseMotion:
		st.mouseMotion[0] += ev.X
		st.mouseMotion[1] += ev.Y

	case userinput.MouseWheel:
		st.mouseWheel[0] += ev.X
		st.mouseWheel[1] += ev.Y
	}
}

// SetViewportPosition sets the offset of the viewport within the window. The
// offset is subtracted from the cursor position.
func (st *Input) SetViewportPosition(pos [2]float32) {
	st.viewport = pos
}

// EndUpdate marks the end of a frame. Edges are cleared, relative values are
// reset to zero and buttons that are no longer down are forgotten.
func (st *Input) EndUpdate() {
	st.mouseMotion = [2]float32{}
	st.mouseWheel = [2]float32{}

	for b, s := range st.buttons {
		if !s.Pressed {
			delete(st.buttons, b)
			continue
		}
		s.JustPressed = false
		s.JustReleased = false
		st.buttons[b] = s
	}
}

// ButtonState returns the state of the button.
func (st *Input) ButtonState(b buttons.Button) ButtonState {
	return st.buttons[b]
}

// IsButtonDown returns true if the button is held or was pressed this frame.
func (st *Input) IsButtonDown(b buttons.Button) bool {
	s := st.buttons[b]
	return s.Pressed || s.JustPressed
}

// IsButtonJustDown returns true if the button was pressed this frame.
func (st *Input) IsButtonJustDown(b buttons.Button) bool {
	return st.buttons[b].JustPressed
}

// IsButtonJustUp returns true if the button was released this frame.
func (st *Input) IsButtonJustUp(b buttons.Button) bool {
	return st.buttons[b].JustReleased
}

// IsButtonUp returns true if the button is not held.
func (st *Input) IsButtonUp(b buttons.Button) bool {
	return !st.buttons[b].Pressed
}

// Axis1D returns the current value of the axis.
//
// Mouse axes are the relative motion or wheel movement accumulated this frame.
// Gamepad axes are the most recently reported value. If a gamepad stick axis
// has never been reported on its own then the value is taken from the
// corresponding component of the stick, if that has been reported. Any axis
// with no source is zero.
func (st *Input) Axis1D(a buttons.Axis1D) float32 {
	switch a.Device {
	case buttons.Mouse:
		switch buttons.MouseAxis1D(a.Code) {
		case buttons.MouseX:
			return st.mouseMotion[0]
		case buttons.MouseY:
			return st.mouseMotion[1]
		case buttons.MouseWheelX:
			return st.mouseWheel[0]
		case buttons.MouseWheelY:
			return st.mouseWheel[1]
		}
		return 0

	case buttons.Gamepad:
		if v, ok := st.axes1D[a]; ok {
			return v
		}
		if p, i, ok := a.Parent(); ok {
			if v, ok := st.axes2D[p]; ok {
				return v[i]
			}
		}
		return 0
	}

	return 0
}

// Axis2D returns the current value of the axis.
//
// Mouse axes are the relative motion or wheel movement accumulated this frame.
// Gamepad sticks are the most recently reported value. If a stick has never
// been reported as a pair then the value is composed from its two component
// axes.
func (st *Input) Axis2D(a buttons.Axis2D) [2]float32 {
	switch a.Device {
	case buttons.Mouse:
		switch buttons.MouseAxis2D(a.Code) {
		case buttons.MouseMotion:
			return st.mouseMotion
		case buttons.MouseWheel:
			return st.mouseWheel
		}
		return [2]float32{}

	case buttons.Gamepad:
		if v, ok := st.axes2D[a]; ok {
			return v
		}
		if x, y, ok := a.Components(); ok {
			return [2]float32{st.axes1D[x], st.axes1D[y]}
		}
		return [2]float32{}
	}

	return [2]float32{}
}

// CursorPosition returns the position of the cursor relative to the viewport.
func (st *Input) CursorPosition() [2]float32 {
	return [2]float32{
		st.cursor[0] - st.viewport[0],
		st.cursor[1] - st.viewport[1],
	}
}

// MouseMotion returns the relative mouse motion accumulated this frame.
func (st *Input) MouseMotion() [2]float32 {
	return st.mouseMotion
}

// MouseWheel returns the relative wheel movement accumulated this frame.
func (st *Input) MouseWheel() [2]float32 {
	return st.mouseWheel
}

// NumButtons returns the number of buttons currently tracked. Buttons that are
// up and have not changed this frame are not tracked.
func (st *Input) NumButtons() int {
	return len(st.buttons)
}

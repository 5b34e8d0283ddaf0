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

package userinput

import (
	"fmt"

	"github.com/jetsetilly/keybee/buttons"
)

// Event represents all the different types of input event. The concrete types
// are listed below.
type Event interface {
	fmt.Stringer
	event()
}

// ButtonPressed is sent when a button or key goes down.
type ButtonPressed struct {
	Button buttons.Button
}

// ButtonReleased is sent when a button or key comes up.
type ButtonReleased struct {
	Button buttons.Button
}

// Axis1DChanged is sent when a device reports a new absolute value for a one
// dimensional axis.
type Axis1DChanged struct {
	Axis  buttons.Axis1D
	Value float32
}

// Axis2DChanged is sent when a device reports a new absolute value for a two
// dimensional axis.
type Axis2DChanged struct {
	Axis  buttons.Axis2D
	Value [2]float32
}

// CursorMoved is sent with the absolute position of the mouse cursor, in
// window coordinates.
type CursorMoved struct {
	X, Y float32
}

// MouseMotion is sent with relative movement of the mouse. Motion events are
// accumulated over the course of a frame.
type MouseMotion struct {
	X, Y float32
}

// MouseWheel is sent with relative movement of the mouse wheel. Wheel events
// are accumulated over the course of a frame.
type MouseWheel struct {
	X, Y float32
}

func (ButtonPressed) event()  {}
func (ButtonReleased) event() {}
func (Axis1DChanged) event()  {}
func (Axis2DChanged) event()  {}
func (CursorMoved) event()    {}
func (MouseMotion) event()    {}
func (MouseWheel) event()     {}

func (ev ButtonPressed) String() string {
	return fmt.Sprintf("pressed %s", ev.Button)
}

func (ev ButtonReleased) String() string {
	return fmt.Sprintf("released %s", ev.Button)
}

func (ev Axis1DChanged) String() string {
	return fmt.Sprintf("%s = %.3f", ev.Axis, ev.Value)
}

func (ev Axis2DChanged) String() string {
	return fmt.Sprintf("%s = (%.3f, %.3f)", ev.Axis, ev.Value[0], ev.Value[1])
}

func (ev CursorMoved) String() string {
	return fmt.Sprintf("cursor at (%.1f, %.1f)", ev.X, ev.Y)
}

func (ev MouseMotion) String() string {
	return fmt.Sprintf("mouse motion (%.1f, %.1f)", ev.X, ev.Y)
}

func (ev MouseWheel) String() string {
	return fmt.Sprintf("mouse wheel (%.1f, %.1f)", ev.X, ev.Y)
}

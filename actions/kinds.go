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

package actions

import (
	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/state"
)

// Kind is implemented by every action kind. The interface is sealed so the
// list of kinds in this package is complete.
type Kind[T any] interface {
	// Get returns the value of the binding for the current frame. Returns
	// false if the binding variant is not meaningful for the kind.
	Get(st *state.Input, b bindings.Binding) (T, bool)

	// Reduce combines the values from every binding of an action. The order
	// of values does not affect the result. An empty list reduces to the
	// identity value for the kind.
	Reduce(values []T) T

	kind()
}

// Event is true on the frame that a bound button is pressed.
type Event struct{}

// Held is true while a bound button is down.
type Held struct{}

// Axis1D is the value of a single axis. Bound buttons act as a digital axis.
type Axis1D struct{}

// Axis2D is the value of a pair of axes.
type Axis2D struct{}

// Axis3D is the value of three axes.
type Axis3D struct{}

func (Event) kind()  {}
func (Held) kind()   {}
func (Axis1D) kind() {}
func (Axis2D) kind() {}
func (Axis3D) kind() {}

// Get implements the Kind interface.
func (Event) Get(st *state.Input, b bindings.Binding) (bool, bool) {
	if b, ok := b.(bindings.Button); ok {
		return st.IsButtonJustDown(b.Button), true
	}
	return false, false
}

// Reduce implements the Kind interface.
func (Event) Reduce(values []bool) bool {
	return anyTrue(values)
}

// Get implements the Kind interface.
func (Held) Get(st *state.Input, b bindings.Binding) (bool, bool) {
	if b, ok := b.(bindings.Button); ok {
		return st.IsButtonDown(b.Button), true
	}
	return false, false
}

// Reduce implements the Kind interface.
func (Held) Reduce(values []bool) bool {
	return anyTrue(values)
}

// Get implements the Kind interface.
func (Axis1D) Get(st *state.Input, b bindings.Binding) (float32, bool) {
	return axis1D(st, b)
}

// Reduce implements the Kind interface.
func (Axis1D) Reduce(values []float32) float32 {
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum
}

// Get implements the Kind interface.
func (Axis2D) Get(st *state.Input, b bindings.Binding) ([2]float32, bool) {
	switch b := b.(type) {
	case bindings.IndividualAxis2D:
		x, ok := axis1D(st, b.X)
		if !ok {
			return [2]float32{}, false
		}
		y, ok := axis1D(st, b.Y)
		if !ok {
			return [2]float32{}, false
		}
		return [2]float32{x, y}, true

	case bindings.DeviceAxis2D:
		v := st.Axis2D(b.Axis)
		return [2]float32{v[0] * b.Sensitivity, v[1] * b.Sensitivity}, true
	}
	return [2]float32{}, false
}

// Reduce implements the Kind interface.
func (Axis2D) Reduce(values [][2]float32) [2]float32 {
	var s [2]float32
	for _, v := range values {
		s[0] += v[0]
		s[1] += v[1]
	}
	return s
}

// Get implements the Kind interface.
func (Axis3D) Get(st *state.Input, b bindings.Binding) ([3]float32, bool) {
	if b, ok := b.(bindings.IndividualAxis3D); ok {
		var v [3]float32
		for i, c := range []bindings.Axis1DBinding{b.X, b.Y, b.Z} {
			var ok bool
			v[i], ok = axis1D(st, c)
			if !ok {
				return [3]float32{}, false
			}
		}
		return v, true
	}
	return [3]float32{}, false
}

// Reduce implements the Kind interface.
func (Axis3D) Reduce(values [][3]float32) [3]float32 {
	var s [3]float32
	for _, v := range values {
		s[0] += v[0]
		s[1] += v[1]
		s[2] += v[2]
	}
	return s
}

// the value of a binding that produces a single axis value. a nil binding is
// not a match
func axis1D(st *state.Input, b bindings.Binding) (float32, bool) {
	switch b := b.(type) {
	case bindings.ButtonsAxis1D:
		var v float32
		if st.IsButtonDown(b.Neg) {
			v -= 1
		}
		if st.IsButtonDown(b.Pos) {
			v += 1
		}
		return v * b.Sensitivity, true

	case bindings.DeviceAxis1D:
		return st.Axis1D(b.Axis) * b.Sensitivity, true
	}
	return 0, false
}

func anyTrue(values []bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

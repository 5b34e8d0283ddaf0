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

// Package actions defines the kinds of action that input can be resolved
// into. Each kind knows how to read a value from the input state through a
// single binding and how to combine the values from several bindings.
//
// The kinds are:
//
//	Event    bool        true on the frame a button goes down
//	Held     bool        true while a button is down
//	Axis1D   float32     a single axis
//	Axis2D   [2]float32  a pair of axes
//	Axis3D   [3]float32  three axes
//
// Any of the axis kinds can be wrapped with Clamped, which limits the length
// of the value to one.
//
// A binding that does not suit the kind is ignored. For example, an Axis2D
// action bound to a single button has a value of zero.
package actions

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

// Package bindingsfile reads and writes bindings tables as YAML or TOML.
//
// The document is a map of action sets, each a map of actions, each a list
// of entries. An entry has exactly one of the following keys:
//
//	button: "keyboard/space"
//	axis1d: {neg: "keyboard/a", pos: "keyboard/d", sensitivity: 2}
//	axis1d: {axis: "gamepad/lefttrigger"}
//	axis2d: {x: {neg: ..., pos: ...}, y: {axis: ...}}
//	axis2d: {axis: "mouse/motion", sensitivity: 0.1}
//	axis3d: {x: ..., y: ..., z: ...}
//
// An axis1d entry has either neg and pos buttons or an axis. An axis2d
// entry has either x and y components or an axis. Sensitivity defaults to one
// when it is not given.
//
// For example, in YAML:
//
//	player:
//	  jump:
//	    - button: keyboard/space
//	    - button: gamepad/a
//	  move:
//	    - axis2d:
//	        x: {neg: keyboard/a, pos: keyboard/d}
//	        y: {neg: keyboard/s, pos: keyboard/w}
//	    - axis2d: {axis: gamepad/leftstick}
//
// A document that has any error at all is rejected as a whole.
package bindingsfile

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

// Package state is the device agnostic record of the input devices for the
// current frame.
//
// Buttons are tracked with three flags: Pressed, JustPressed and JustReleased.
// The Just flags are edges and last for exactly one frame. Both edges can be
// set at the same time if a button is pressed and released within a single
// frame. This means that a very quick tap on a key is never lost.
//
// The frame is advanced with EndUpdate(), which must be called exactly once
// per frame after the frame's queries have been made.
package state

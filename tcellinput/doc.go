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

// Package tcellinput translates tcell terminal events into userinput events.
//
// Terminals do not report key releases. Each key event is therefore
// translated into a press followed immediately by a release, which the
// state package sees as a tap: the key is down, and just pressed, for one
// frame. Key repeat from the terminal appears as a series of taps.
//
// Mouse events from tcell carry the set of buttons currently held. The
// Translator compares each event with the previous one to find the press and
// release edges.
package tcellinput

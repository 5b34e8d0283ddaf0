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

// Package sdlinput translates SDL events into userinput events.
//
// The Translator should be given every event returned by sdl.PollEvent().
// Events that have no meaning for Keybee produce no userinput events.
//
// Gamepad support is through the SDL GameController interface, so the
// caller must open each controller with sdl.GameControllerOpen(). The raw
// joystick events that SDL also sends for an opened controller are ignored.
//
// A gamepad stick is reported as two Axis1DChanged events, one per axis, and
// an Axis2DChanged event for the stick as a whole. The stick directions and
// the triggers are also reported as button presses when they move past
// Threshold. The dpad buttons are also reported as the dpadx and dpady axes.
package sdlinput

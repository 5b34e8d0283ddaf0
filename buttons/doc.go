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

// Package buttons identifies the physical inputs of the supported devices.
//
// There are three kinds of identifier: Button (something that is either
// pressed or released), Axis1D (a single analog value) and Axis2D (a pair of
// analog values, like a thumbstick). Each identifier is made up of a Device and
// a device specific code. Identifiers are comparable and so can be used as map
// keys. They are also totally ordered with the Compare() function.
//
// Each device has its own enumeration of codes. For example, KeyboardKey for
// the keyboard and GamepadButton for the gamepad. The enumerations are
// converted to identifiers with their Button() and Axis() functions:
//
//	jump := buttons.KeySpace.Button()
//	move := buttons.GamepadLeftStick.Axis()
//
// Identifiers have a stable string form of "device/name", for example
// "keyboard/space" or "gamepad/leftstick". The Parse functions convert the
// string form back into an identifier.
package buttons

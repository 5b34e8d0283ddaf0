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

// Package prefs holds the user preferences of the keybee command. Each
// preference is one of the typed values Bool, Int, Float or String. Values
// are registered with a Disk under a key and saved to and loaded from a plain
// text file:
//
//	keybee.bindings :: bindings.yaml
//	keybee.fps :: 60
//
// Preferences can also be given on the command line as a single string of
// key/value pairs separated by semicolons. See PushCommandLineStack(). A
// command line value takes priority over the value loaded from disk.
//
// Hooks can be attached to a value with SetHookPre() and SetHookPost(). The
// hooks are run on every call to Set() even if the value has not changed.
package prefs

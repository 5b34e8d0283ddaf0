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

// Package paths prepares paths to keybee's files, such as the preferences
// file.
//
// If a directory named ".keybee" is present in the current directory then
// that is the base path. This is convenient during development. Otherwise the
// base path is the keybee directory in the user's config directory, as
// returned by os.UserConfigDir(). On a modern Linux system:
//
//	/home/user/.config/keybee/preferences
package paths

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

// Package reload watches a bindings file and applies it whenever it changes.
//
// The directory containing the file is watched rather than the file itself.
// Many editors save by writing a new file and renaming it over the old one,
// which would otherwise end the watch.
//
// A file that fails to load is logged and ignored. The bindings in use at
// that point are kept until the file is fixed.
package reload

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

// Package statsview is an optional package. The stats server is only built
// when the statsview build tag is present.
//
// When launched, graphs of the runtime statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// This is useful for watching allocations in the session while a monitor is
// running. For example, that the button table does not grow over time.
package statsview

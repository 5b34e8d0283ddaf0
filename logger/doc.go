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

// Package logger is the central log for Keybee. Entries are made up of a tag
// and a detail string. The tag should name the package or component making the
// entry, for example:
//
//	logger.Log(logger.Allow, "session", "bindings cleared")
//
// The log is bounded and older entries are discarded once the maximum has been
// reached. Repeated entries are folded into one entry with a repeat count.
//
// Logging is reserved for infrequent events. The input path (event handling
// and action queries) never logs.
package logger

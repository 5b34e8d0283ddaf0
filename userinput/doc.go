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

// Package userinput defines the normalised events that describe input from
// real hardware.
//
// It can be thought of as the boundary between a platform (SDL, a terminal,
// a windowing library) and the input state. An adapter translates the
// platform's native events into the Event types of this package and hands them
// to a Handler. The adapter is the only place that knows about the platform;
// everything past the Handler only knows about the identifiers in the buttons
// package.
//
// The set of Event types is closed. Adapters cannot define new events.
package userinput

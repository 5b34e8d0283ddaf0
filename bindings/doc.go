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

// Package bindings describes how physical inputs are attached to named
// actions.
//
// A Binding is one of a fixed set of variants. Which variants are meaningful
// depends on the kind of the action they are used with: a Button binding
// works for Event and Held actions but is ignored by an Axis2D action.
//
// Bindings are grouped by action name into an ActionSet and by action set
// name into a Table. Merging tables is always a per-action overwrite.
package bindings

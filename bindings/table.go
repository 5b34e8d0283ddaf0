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

package bindings

import (
	"maps"
	"slices"
	"strings"
)

// ActionSet maps action names to the list of bindings for that action. The
// order of bindings in the list is preserved.
type ActionSet map[string][]Binding

// Merge copies every action in other into the set. An action that is already
// present has its list replaced, not extended. Actions that are not named in
// other are left alone.
func (set ActionSet) Merge(other ActionSet) {
	for name, b := range other {
		set[name] = slices.Clone(b)
	}
}

// Clone returns a copy of the set that shares nothing with the original.
// Binding values are immutable so the lists are copied shallowly.
func (set ActionSet) Clone() ActionSet {
	c := make(ActionSet, len(set))
	c.Merge(set)
	return c
}

// Names returns the action names in sorted order.
func (set ActionSet) Names() []string {
	return slices.Sorted(maps.Keys(set))
}

// Table maps action set names to ActionSets.
type Table map[string]ActionSet

// Merge merges each action set in other into the table, creating sets that
// are not yet present.
func (tab Table) Merge(other Table) {
	for name, set := range other {
		s, ok := tab[name]
		if !ok {
			s = make(ActionSet, len(set))
			tab[name] = s
		}
		s.Merge(set)
	}
}

// Clear removes every action set from the table.
func (tab Table) Clear() {
	clear(tab)
}

// Clone returns a copy of the table that shares nothing with the original.
func (tab Table) Clone() Table {
	c := make(Table, len(tab))
	c.Merge(tab)
	return c
}

// Names returns the action set names in sorted order.
func (tab Table) Names() []string {
	return slices.Sorted(maps.Keys(tab))
}

// Separator joins an action set name and an action name.
const Separator = "/"

// ValidSetName returns false if the name cannot be used for an action set.
// Set names must not contain the Separator. Action names may contain it.
func ValidSetName(name string) bool {
	return !strings.Contains(name, Separator)
}

// FullName joins an action set name and an action name into the name of the
// action. The full name is unique only if the set name is valid, see
// ValidSetName().
func FullName(set string, action string) string {
	return set + Separator + action
}

// Flatten returns the bindings keyed by full action name. Action sets with an
// invalid name are not included.
func (tab Table) Flatten() map[string][]Binding {
	f := make(map[string][]Binding)
	for set, actions := range tab {
		if !ValidSetName(set) {
			continue
		}
		for action, b := range actions {
			f[FullName(set, action)] = b
		}
	}
	return f
}

func (tab Table) String() string {
	s := strings.Builder{}
	for _, set := range tab.Names() {
		for _, action := range tab[set].Names() {
			s.WriteString(FullName(set, action))
			s.WriteString(":")
			for _, b := range tab[set][action] {
				s.WriteString(" ")
				s.WriteString(b.String())
			}
			s.WriteString("\n")
		}
	}
	return s.String()
}

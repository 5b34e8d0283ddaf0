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

package main

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/keybee/actions"
	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/session"
)

// monitored is an action of any kind that can be displayed.
type monitored interface {
	fmt.Stringer
	Name() string
}

// actionList is every action named in a bindings table, in set and action
// order.
type actionList struct {
	sets    map[string]*session.ActionSet
	actions []monitored
}

// buildActions creates an action for every bound name in the table. Action
// sets that already exist in the list are reused so that a session does not
// accumulate duplicate sets over a reload.
func buildActions(sess *session.Session, tab bindings.Table, prev *actionList) *actionList {
	l := &actionList{
		sets: make(map[string]*session.ActionSet),
	}
	if prev != nil {
		l.sets = prev.sets
	}

	for _, setName := range tab.Names() {
		set, ok := l.sets[setName]
		if !ok {
			set = sess.CreateActionSet(setName)
			l.sets[setName] = set
		}
		for _, name := range tab[setName].Names() {
			bs := tab[setName][name]
			if len(bs) == 0 {
				continue
			}
			l.actions = append(l.actions, createAction(set, name, bs[0]))
		}
	}

	return l
}

// createAction chooses the kind of action from the type of binding.
func createAction(set *session.ActionSet, name string, b bindings.Binding) monitored {
	switch b.(type) {
	case bindings.ButtonsAxis1D, bindings.DeviceAxis1D:
		return session.CreateAction[float32](set, name, actions.Axis1D{})
	case bindings.IndividualAxis2D, bindings.DeviceAxis2D:
		return session.CreateAction[[2]float32](set, name, actions.NewClamped[[2]float32](actions.Axis2D{}))
	case bindings.IndividualAxis3D:
		return session.CreateAction[[3]float32](set, name, actions.Axis3D{})
	}
	return session.CreateAction[bool](set, name, actions.Held{})
}

// lines returns one line of text per action.
func (l *actionList) lines() []string {
	s := make([]string, 0, len(l.actions))
	for _, a := range l.actions {
		s = append(s, a.String())
	}
	return s
}

// changed returns the lines that differ from the previous call to changed.
func (l *actionList) changed(prev map[string]string) []string {
	var s []string
	for _, a := range l.actions {
		v := a.String()
		if prev[a.Name()] != v {
			prev[a.Name()] = v
			s = append(s, v)
		}
	}
	slices.Sort(s)
	return s
}

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

package session

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/keybee/actions"
	"github.com/jetsetilly/keybee/bindings"
)

// Action is a single named action. Its value is resolved from the current
// input state and bindings each time Get() is called.
type Action[T any] struct {
	name string
	set  *ActionSet

	// the kind is private to the action and is guarded by its own lock so
	// that unrelated actions never wait on each other
	crit sync.Mutex
	kind actions.Kind[T]
}

// CreateAction creates a new action in the action set. The full name of the
// action is the set name and the action name joined with a slash.
//
// No bindings are created for the action. Until bindings for the full name
// are used by the session the action has the identity value for its kind.
func CreateAction[T any](set *ActionSet, name string, kind actions.Kind[T]) *Action[T] {
	return &Action[T]{
		name: bindings.FullName(set.name, name),
		set:  set,
		kind: kind,
	}
}

// Name returns the full name of the action.
func (act *Action[T]) Name() string {
	return act.name
}

// Get returns the value of the action for the current frame.
func (act *Action[T]) Get() T {
	s := act.set.store
	s.inputLock.RLock()
	defer s.inputLock.RUnlock()
	s.cacheLock.RLock()
	defer s.cacheLock.RUnlock()

	var list []bindings.Binding
	if act.set.enabled.Load() {
		list = s.cache[act.name]
	}

	act.crit.Lock()
	defer act.crit.Unlock()

	values := make([]T, 0, len(list))
	for _, b := range list {
		if v, ok := act.kind.Get(s.input, b); ok {
			values = append(values, v)
		}
	}

	return act.kind.Reduce(values)
}

func (act *Action[T]) String() string {
	return fmt.Sprintf("%s: %v", act.name, act.Get())
}

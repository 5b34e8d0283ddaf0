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
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/logger"
	"github.com/jetsetilly/keybee/state"
	"github.com/jetsetilly/keybee/userinput"
)

// store is shared by the Session and every ActionSet and Action created from
// it. each resource has its own lock.
//
// when more than one lock is needed they are acquired in the following
// order: input, bindings, cache
type store struct {
	inputLock sync.RWMutex
	input     *state.Input

	bindingsLock sync.RWMutex
	bindings     bindings.Table

	// the bindings keyed by full action name. rebuilt from the bindings
	// table whenever it changes and never edited directly
	cacheLock sync.RWMutex
	cache     map[string][]bindings.Binding
}

// rebuild the cache from the bindings table. the caller must hold the
// bindings lock and the cache lock
func (s *store) rebuild() {
	s.cache = s.bindings.Flatten()
}

// Session is the owner of the input state and the bindings.
type Session struct {
	store *store
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession() *Session {
	return &Session{
		store: &store{
			input:    state.NewInput(),
			bindings: make(bindings.Table),
			cache:    make(map[string][]bindings.Binding),
		},
	}
}

// CreateActionSet creates a new action set. Action sets are enabled when they
// are created.
//
// A set name cannot contain bindings.Separator. Any separator in the name is
// replaced with an underscore.
func (sess *Session) CreateActionSet(name string) *ActionSet {
	if !bindings.ValidSetName(name) {
		n := strings.ReplaceAll(name, bindings.Separator, "_")
		logger.Logf(logger.Allow, "session", "action set %q renamed to %q", name, n)
		name = n
	}
	set := &ActionSet{
		name:  name,
		store: sess.store,
	}
	set.enabled.Store(true)
	return set
}

// UseBindings merges the table into the current bindings. Actions in the
// table replace actions of the same name. Actions not in the table keep their
// existing bindings.
func (sess *Session) UseBindings(tab bindings.Table) {
	s := sess.store
	s.bindingsLock.Lock()
	defer s.bindingsLock.Unlock()
	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	s.bindings.Merge(tab)
	s.rebuild()
	logger.Logf(logger.Allow, "session", "bindings updated (%d actions)", len(s.cache))
}

// ClearBindings removes all bindings. Every action will have the identity
// value for its kind until new bindings are used.
func (sess *Session) ClearBindings() {
	s := sess.store
	s.bindingsLock.Lock()
	defer s.bindingsLock.Unlock()
	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	s.bindings.Clear()
	s.rebuild()
	logger.Log(logger.Allow, "session", "bindings cleared")
}

// ReplaceBindings is equivalent to ClearBindings() followed by UseBindings()
// except that no action can see the empty bindings in between.
func (sess *Session) ReplaceBindings(tab bindings.Table) {
	s := sess.store
	s.bindingsLock.Lock()
	defer s.bindingsLock.Unlock()
	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	s.bindings.Clear()
	s.bindings.Merge(tab)
	s.rebuild()
	logger.Logf(logger.Allow, "session", "bindings replaced (%d actions)", len(s.cache))
}

// Bindings returns a copy of the current bindings.
func (sess *Session) Bindings() bindings.Table {
	s := sess.store
	s.bindingsLock.RLock()
	defer s.bindingsLock.RUnlock()
	return s.bindings.Clone()
}

// HandleEvent implements the userinput.Handler interface.
func (sess *Session) HandleEvent(ev userinput.Event) {
	s := sess.store
	s.inputLock.Lock()
	defer s.inputLock.Unlock()
	s.input.HandleEvent(ev)
}

// SetViewportPosition sets the offset of the viewport within the window.
func (sess *Session) SetViewportPosition(pos [2]float32) {
	s := sess.store
	s.inputLock.Lock()
	defer s.inputLock.Unlock()
	s.input.SetViewportPosition(pos)
}

// EndUpdate marks the end of the frame. It should be called once per frame
// after all actions have been read.
func (sess *Session) EndUpdate() {
	s := sess.store
	s.inputLock.Lock()
	defer s.inputLock.Unlock()
	s.input.EndUpdate()
}

// ReadState gives the function read-only access to the input state. The state
// must not be retained or modified.
func (sess *Session) ReadState(f func(st *state.Input)) {
	s := sess.store
	s.inputLock.RLock()
	defer s.inputLock.RUnlock()
	f(s.input)
}

// ActionSet is a named group of actions that can be enabled and disabled
// together.
type ActionSet struct {
	name    string
	store   *store
	enabled atomic.Bool
}

// Name returns the name of the action set.
func (set *ActionSet) Name() string {
	return set.name
}

// SetEnabled enables or disables every action in the set. A disabled action
// has the identity value for its kind.
func (set *ActionSet) SetEnabled(enabled bool) {
	set.enabled.Store(enabled)
}

// Enabled returns true if the set is enabled.
func (set *ActionSet) Enabled() bool {
	return set.enabled.Load()
}

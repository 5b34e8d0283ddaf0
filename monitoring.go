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

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/bindingsfile"
	"github.com/jetsetilly/keybee/logger"
	"github.com/jetsetilly/keybee/reload"
	"github.com/jetsetilly/keybee/session"
)

// reloadTarget replaces the session bindings and signals that the action list
// should be rebuilt.
type reloadTarget struct {
	sess     *session.Session
	reloaded chan struct{}
}

func (t *reloadTarget) ReplaceBindings(tab bindings.Table) {
	t.sess.ReplaceBindings(tab)
	select {
	case t.reloaded <- struct{}{}:
	default:
	}
}

// monitoring is the state shared by the monitor modes.
type monitoring struct {
	path    string
	sess    *session.Session
	actions *actionList

	// nil if hot reload is disabled. a nil channel is never ready in a select
	// statement
	target  *reloadTarget
	watcher *reload.Watcher
}

// startMonitoring loads the bindings file and prepares a session with an action
// for every bound name.
func startMonitoring(cfg *config, arg string) (*monitoring, error) {
	path, err := cfg.bindingsPath(arg)
	if err != nil {
		return nil, err
	}

	tab, err := bindingsfile.Load(path)
	if err != nil {
		return nil, err
	}

	mon := &monitoring{
		path: path,
		sess: session.NewSession(),
	}
	mon.sess.UseBindings(tab)
	mon.actions = buildActions(mon.sess, tab, nil)

	if cfg.reload.Get().(bool) {
		mon.target = &reloadTarget{
			sess:     mon.sess,
			reloaded: make(chan struct{}, 1),
		}
		mon.watcher, err = reload.NewWatcher(path, mon.target)
		if err != nil {
			return nil, fmt.Errorf("hot reload: %w", err)
		}
		logger.Logf(logger.Allow, "keybee", "watching %s", path)
	}

	return mon, nil
}

// reloaded returns a channel that receives when the bindings have been
// reloaded. the channel is nil if hot reload is disabled.
func (mon *monitoring) reloaded() <-chan struct{} {
	if mon.target == nil {
		return nil
	}
	return mon.target.reloaded
}

// rebuild the action list from the current bindings.
func (mon *monitoring) rebuild() {
	mon.actions = buildActions(mon.sess, mon.sess.Bindings(), mon.actions)
}

func (mon *monitoring) stop() {
	if mon.watcher != nil {
		if err := mon.watcher.Close(); err != nil {
			logger.Log(logger.Allow, "keybee", err)
		}
	}
}

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

package reload

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/bindingsfile"
	"github.com/jetsetilly/keybee/logger"
)

// Target is the destination of reloaded bindings. The session package's
// Session type is the usual implementation.
type Target interface {
	ReplaceBindings(tab bindings.Table)
}

// Settle is how long the file must be quiet after a change before it is
// loaded. A single save can cause several events.
const Settle = 100 * time.Millisecond

// Watcher reloads a bindings file when it changes.
type Watcher struct {
	path   string
	target Target

	fsw *fsnotify.Watcher

	closeOnce sync.Once
	closeCh   chan struct{}
	closedWg  sync.WaitGroup
}

// NewWatcher starts watching the bindings file at path. The file is not
// loaded until it changes.
func NewWatcher(path string, target Target) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}

	// fail early if the file is not one that can be loaded
	if _, err := bindingsfile.FormatFromPath(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("reload: %w", err)
	}

	w := &Watcher{
		path:    abs,
		target:  target,
		fsw:     fsw,
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher. It waits for any reload in progress to finish.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.closedWg.Wait()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.closedWg.Done()

	var settle <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				settle = time.After(Settle)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Logf(logger.Allow, "reload", "%s: %v", w.path, err)

		case <-settle:
			settle = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	tab, err := bindingsfile.Load(w.path)
	if err != nil {
		logger.Logf(logger.Allow, "reload", "%s: %v", w.path, err)
		return
	}
	w.target.ReplaceBindings(tab)
	logger.Logf(logger.Allow, "reload", "%s: reloaded", w.path)
}

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

	"github.com/jetsetilly/keybee/prefs"
)

// settings of the keybee command that persist between runs.
type config struct {
	dsk *prefs.Disk

	// default bindings file if one is not given on the command line
	bindings prefs.String

	// watch the bindings file for changes
	reload prefs.Bool

	// frames per second of the monitor loops
	fps prefs.Int

	// multiplier for SDL mouse wheel events
	wheelScale prefs.Float
}

const (
	defaultFPS        = 60
	defaultWheelScale = 1.0
)

// newConfig loads the settings from the prefs file at path. A missing file is
// not an error.
func newConfig(path string) (*config, error) {
	cfg := &config{}

	var err error
	cfg.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	cfg.fps.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("fps must be greater than zero")
		}
		return nil
	})

	err = cfg.reset()
	if err != nil {
		return nil, err
	}

	err = cfg.dsk.Add("keybee.bindings", &cfg.bindings)
	if err != nil {
		return nil, err
	}
	err = cfg.dsk.Add("keybee.reload", &cfg.reload)
	if err != nil {
		return nil, err
	}
	err = cfg.dsk.Add("keybee.fps", &cfg.fps)
	if err != nil {
		return nil, err
	}
	err = cfg.dsk.Add("keybee.sdl.wheelscale", &cfg.wheelScale)
	if err != nil {
		return nil, err
	}

	err = cfg.dsk.Load()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// reset the settings to their defaults. the prefs file is not changed until
// the next call to save()
func (cfg *config) reset() error {
	if err := cfg.bindings.Set(""); err != nil {
		return err
	}
	if err := cfg.reload.Set(true); err != nil {
		return err
	}
	if err := cfg.fps.Set(defaultFPS); err != nil {
		return err
	}
	return cfg.wheelScale.Set(defaultWheelScale)
}

func (cfg *config) save() error {
	return cfg.dsk.Save()
}

// bindingsPath returns the argument if it is not empty, otherwise the bindings
// file from the settings.
func (cfg *config) bindingsPath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if p := cfg.bindings.String(); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no bindings file")
}

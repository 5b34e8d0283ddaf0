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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/keybee/logger"
)

type gamepad interface {
	Close()
}

// gamepads are keyed by instance ID. SDL reports a new device by device index
// and a removed device by instance ID.
type gamepads struct {
	open func(index int) (sdl.JoystickID, gamepad, bool)
	pads map[sdl.JoystickID]gamepad
}

func newGamepads(open func(index int) (sdl.JoystickID, gamepad, bool)) *gamepads {
	return &gamepads{
		open: open,
		pads: make(map[sdl.JoystickID]gamepad),
	}
}

// add the device at the index. opening a device that is already open returns
// the same instance, in which case the extra reference is closed
func (g *gamepads) add(index int) {
	id, pad, ok := g.open(index)
	if !ok {
		return
	}
	if _, ok := g.pads[id]; ok {
		pad.Close()
		return
	}
	g.pads[id] = pad
}

func (g *gamepads) remove(id sdl.JoystickID) {
	if pad, ok := g.pads[id]; ok {
		pad.Close()
		delete(g.pads, id)
		logger.Logf(logger.Allow, "sdl", "gamepad %d removed", id)
	}
}

func (g *gamepads) closeAll() {
	for id, pad := range g.pads {
		pad.Close()
		delete(g.pads, id)
	}
}

// openController is the open function for gamepads when using SDL.
func openController(index int) (sdl.JoystickID, gamepad, bool) {
	if !sdl.IsGameController(index) {
		return 0, nil, false
	}
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		return 0, nil, false
	}
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
	return pad.Joystick().InstanceID(), pad, true
}

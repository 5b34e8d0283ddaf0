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
	"io"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/keybee/logger"
	"github.com/jetsetilly/keybee/modalflag"
	"github.com/jetsetilly/keybee/sdlinput"
	"github.com/jetsetilly/keybee/userinput"
	"github.com/jetsetilly/keybee/version"
)

// sdlMonitor opens a window and prints the value of every action that changes.
// must be called from the main thread.
func sdlMonitor(md *modalflag.Modes, cfg *config, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Open a window and print the value of any action that changes. Close the window to quit.")
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	mon, err := startMonitoring(cfg, md.GetArg(0))
	if err != nil {
		return err
	}
	defer mon.stop()

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer sdl.Quit()

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	window, err := sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(*width), int32(*height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer window.Destroy()

	pads := newGamepads(openController)
	defer pads.closeAll()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		pads.add(i)
	}

	tr := sdlinput.NewTranslator()
	tr.WheelScale = float32(cfg.wheelScale.Get().(float64))

	frame := time.Second / time.Duration(cfg.fps.Get().(int))
	prev := make(map[string]string)

	for {
		start := time.Now()

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.ControllerDeviceEvent:
				switch ev.Type {
				case sdl.CONTROLLERDEVICEADDED:
					pads.add(int(ev.Which))
				case sdl.CONTROLLERDEVICEREMOVED:
					pads.remove(ev.Which)
				}
			}
			userinput.HandleAll(mon.sess, tr.Translate(ev))
		}

		select {
		case <-mon.reloaded():
			mon.rebuild()
		default:
		}

		for _, l := range mon.actions.changed(prev) {
			fmt.Fprintln(output, l)
		}
		mon.sess.EndUpdate()

		if d := frame - time.Since(start); d > 0 {
			sdl.Delay(uint32(d.Milliseconds()))
		}
	}
}

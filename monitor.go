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
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/keybee/logger"
	"github.com/jetsetilly/keybee/modalflag"
	"github.com/jetsetilly/keybee/state"
	"github.com/jetsetilly/keybee/tcellinput"
	"github.com/jetsetilly/keybee/userinput"
	"github.com/jetsetilly/keybee/version"
)

// number of log entries shown at the foot of the monitor
const monitorLogLines = 5

func monitor(md *modalflag.Modes, cfg *config) error {
	md.NewMode()
	md.AdditionalHelp("Show the value of every bound action in the terminal. ESC to quit.")
	save := md.AddBool("save", false, "remember the bindings file as the default")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	mon, err := startMonitoring(cfg, md.GetArg(0))
	if err != nil {
		return err
	}
	defer mon.stop()

	if *save {
		if err := cfg.bindings.Set(mon.path); err != nil {
			return err
		}
		if err := cfg.save(); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// PollEvent() returns nil after Fini()
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tr := tcellinput.NewTranslator()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps.Get().(int)))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			userinput.HandleAll(mon.sess, tr.Translate(ev))

		case <-mon.reloaded():
			mon.rebuild()

		case <-ticker.C:
			draw(screen, mon)
			mon.sess.EndUpdate()
		}
	}
}

func draw(screen tcell.Screen, mon *monitoring) {
	screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	plain := tcell.StyleDefault
	dim := tcell.StyleDefault.Dim(true)

	var cursor [2]float32
	mon.sess.ReadState(func(st *state.Input) {
		cursor = st.CursorPosition()
	})

	y := 0
	drawText(screen, 0, y, title, fmt.Sprintf("%s: %s", version.String(), mon.path))
	y++
	drawText(screen, 0, y, dim, fmt.Sprintf("cursor (%.0f, %.0f)", cursor[0], cursor[1]))
	y += 2

	for _, l := range mon.actions.lines() {
		drawText(screen, 2, y, plain, l)
		y++
	}

	var log strings.Builder
	logger.Tail(&log, monitorLogLines)
	_, h := screen.Size()
	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	for i, l := range lines {
		drawText(screen, 0, h-len(lines)+i, dim, l)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

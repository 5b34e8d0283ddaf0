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

package tcellinput

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/userinput"
)

var specialKeys = map[tcell.Key]buttons.KeyboardKey{
	tcell.KeyUp:         buttons.KeyUp,
	tcell.KeyDown:       buttons.KeyDown,
	tcell.KeyLeft:       buttons.KeyLeft,
	tcell.KeyRight:      buttons.KeyRight,
	tcell.KeyEscape:     buttons.KeyEscape,
	tcell.KeyEnter:      buttons.KeyEnter,
	tcell.KeyTab:        buttons.KeyTab,
	tcell.KeyBackspace:  buttons.KeyBackspace,
	tcell.KeyBackspace2: buttons.KeyBackspace,
	tcell.KeyF1:         buttons.KeyF1,
	tcell.KeyF2:         buttons.KeyF2,
	tcell.KeyF3:         buttons.KeyF3,
	tcell.KeyF4:         buttons.KeyF4,
	tcell.KeyF5:         buttons.KeyF5,
	tcell.KeyF6:         buttons.KeyF6,
	tcell.KeyF7:         buttons.KeyF7,
	tcell.KeyF8:         buttons.KeyF8,
	tcell.KeyF9:         buttons.KeyF9,
	tcell.KeyF10:        buttons.KeyF10,
	tcell.KeyF11:        buttons.KeyF11,
	tcell.KeyF12:        buttons.KeyF12,
}

func runeKey(r rune) (buttons.KeyboardKey, bool) {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		return buttons.KeyA + buttons.KeyboardKey(r-'a'), true
	case r >= '0' && r <= '9':
		return buttons.Key0 + buttons.KeyboardKey(r-'0'), true
	case r == ' ':
		return buttons.KeySpace, true
	}
	return 0, false
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button buttons.MouseButton
}{
	{mask: tcell.ButtonPrimary, button: buttons.MouseButtonLeft},
	{mask: tcell.ButtonSecondary, button: buttons.MouseButtonRight},
	{mask: tcell.ButtonMiddle, button: buttons.MouseButtonMiddle},
}

// Translator converts tcell events to userinput events. It must not be used
// from more than one goroutine at a time.
type Translator struct {
	held tcell.ButtonMask

	// the previous position of the mouse, used to calculate motion
	x, y      int
	seenMouse bool
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts a single tcell event into zero or more userinput events.
func (tr *Translator) Translate(ev tcell.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return tr.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return tr.mouse(x, y, ev.Buttons())
	}
	return nil
}

func (tr *Translator) key(k tcell.Key, r rune) []userinput.Event {
	var key buttons.KeyboardKey
	var ok bool

	if k == tcell.KeyRune {
		key, ok = runeKey(r)
	} else {
		key, ok = specialKeys[k]
	}
	if !ok {
		return nil
	}

	return []userinput.Event{
		userinput.ButtonPressed{Button: key.Button()},
		userinput.ButtonReleased{Button: key.Button()},
	}
}

func (tr *Translator) mouse(x, y int, mask tcell.ButtonMask) []userinput.Event {
	var evs []userinput.Event

	if tr.seenMouse && (x != tr.x || y != tr.y) {
		evs = append(evs, userinput.MouseMotion{X: float32(x - tr.x), Y: float32(y - tr.y)})
	}
	if !tr.seenMouse || x != tr.x || y != tr.y {
		evs = append(evs, userinput.CursorMoved{X: float32(x), Y: float32(y)})
	}
	tr.x, tr.y = x, y
	tr.seenMouse = true

	for _, b := range mouseButtons {
		was := tr.held&b.mask == b.mask
		is := mask&b.mask == b.mask
		switch {
		case is && !was:
			evs = append(evs, userinput.ButtonPressed{Button: b.button.Button()})
		case was && !is:
			evs = append(evs, userinput.ButtonReleased{Button: b.button.Button()})
		}
	}
	tr.held = mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	var wx, wy float32
	if mask&tcell.WheelUp == tcell.WheelUp {
		wy++
	}
	if mask&tcell.WheelDown == tcell.WheelDown {
		wy--
	}
	if mask&tcell.WheelLeft == tcell.WheelLeft {
		wx--
	}
	if mask&tcell.WheelRight == tcell.WheelRight {
		wx++
	}
	if wx != 0 || wy != 0 {
		evs = append(evs, userinput.MouseWheel{X: wx, Y: wy})
	}

	return evs
}

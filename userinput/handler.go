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

package userinput

// Handler conceptualises the destination of translated events. The session
// package's Session type is the usual implementation.
type Handler interface {
	// HandleEvent applies the event. It must be safe to call HandleEvent from
	// any goroutine.
	HandleEvent(ev Event)
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(ev Event)

// HandleEvent implements the Handler interface.
func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}

// HandleAll forwards every event, in order, to the Handler. Adapters often
// translate one native event into several Events.
func HandleAll(h Handler, evs []Event) {
	for _, ev := range evs {
		h.HandleEvent(ev)
	}
}

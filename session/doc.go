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

// Package session ties the input state, the bindings and the actions
// together.
//
// A Session is created once and fed events from the platform through
// HandleEvent(). The application creates ActionSets and Actions from the
// session and reads the value of each Action once per frame. The frame is
// completed with EndUpdate().
//
//	sess := session.NewSession()
//	player := sess.CreateActionSet("player")
//	jump := session.CreateAction[bool](player, "jump", actions.Event{})
//	move := session.CreateAction[[2]float32](player, "move", actions.NewClamped[[2]float32](actions.Axis2D{}))
//
//	sess.UseBindings(bindings.Table{
//		"player": {
//			"jump": {bindings.NewButton(buttons.KeySpace.Button())},
//		},
//	})
//
// All methods of Session, ActionSet and Action are safe for concurrent use.
// Events may arrive on a different goroutine to the one reading the actions.
package session

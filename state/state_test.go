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

package state_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/state"
	"github.com/jetsetilly/keybee/test"
	"github.com/jetsetilly/keybee/userinput"
)

var space = buttons.KeySpace.Button()

func TestPressAndHold(t *testing.T) {
	st := state.NewInput()
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{})
	test.ExpectSuccess(t, st.IsButtonUp(space))
	test.ExpectFailure(t, st.IsButtonDown(space))

	st.HandleEvent(userinput.ButtonPressed{Button: space})
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{Pressed: true, JustPressed: true})
	test.ExpectSuccess(t, st.IsButtonDown(space))
	test.ExpectSuccess(t, st.IsButtonJustDown(space))
	test.ExpectFailure(t, st.IsButtonUp(space))

	st.EndUpdate()
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{Pressed: true})
	test.ExpectSuccess(t, st.IsButtonDown(space))
	test.ExpectFailure(t, st.IsButtonJustDown(space))

	st.HandleEvent(userinput.ButtonReleased{Button: space})
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{JustReleased: true})
	test.ExpectSuccess(t, st.IsButtonJustUp(space))
	test.ExpectSuccess(t, st.IsButtonUp(space))
	test.ExpectFailure(t, st.IsButtonDown(space))

	st.EndUpdate()
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{})
	test.ExpectEquality(t, st.NumButtons(), 0)
}

func TestTap(t *testing.T) {
	st := state.NewInput()

	// press and release in the same frame. both edges must be visible
	st.HandleEvent(userinput.ButtonPressed{Button: space})
	st.HandleEvent(userinput.ButtonReleased{Button: space})
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{JustPressed: true, JustReleased: true})
	test.ExpectSuccess(t, st.IsButtonDown(space))
	test.ExpectSuccess(t, st.IsButtonJustDown(space))
	test.ExpectSuccess(t, st.IsButtonJustUp(space))
	test.ExpectSuccess(t, st.IsButtonUp(space))

	st.EndUpdate()
	test.ExpectEquality(t, st.ButtonState(space), state.ButtonState{})
	test.ExpectFailure(t, st.IsButtonDown(space))
}

func TestEndUpdateIdempotent(t *testing.T) {
	st := state.NewInput()
	held := buttons.KeyW.Button()

	st.HandleEvent(userinput.ButtonPressed{Button: held})
	st.HandleEvent(userinput.ButtonPressed{Button: space})
	st.HandleEvent(userinput.ButtonReleased{Button: space})
	test.ExpectEquality(t, st.NumButtons(), 2)

	st.EndUpdate()
	test.ExpectEquality(t, st.ButtonState(held), state.ButtonState{Pressed: true})
	test.ExpectEquality(t, st.NumButtons(), 1)

	st.EndUpdate()
	test.ExpectEquality(t, st.ButtonState(held), state.ButtonState{Pressed: true})
	test.ExpectEquality(t, st.NumButtons(), 1)
}

func TestButtonTableDoesNotGrow(t *testing.T) {
	st := state.NewInput()
	for k := buttons.KeyA; k <= buttons.KeyZ; k++ {
		st.HandleEvent(userinput.ButtonPressed{Button: k.Button()})
		st.EndUpdate()
		st.HandleEvent(userinput.ButtonReleased{Button: k.Button()})
		st.EndUpdate()
	}
	test.ExpectEquality(t, st.NumButtons(), 0)
}

// random interleavings of press, release and end of frame compared against a
// simple model of the expected result
func TestInterleavings(t *testing.T) {
	for range 100 {
		st := state.NewInput()

		var lastEdgeIsPress bool
		var pressSinceEnd bool
		var releaseSinceEnd bool

		for range 50 {
			switch rand.IntN(3) {
			case 0:
				st.HandleEvent(userinput.ButtonPressed{Button: space})
				lastEdgeIsPress = true
				pressSinceEnd = true
			case 1:
				st.HandleEvent(userinput.ButtonReleased{Button: space})
				lastEdgeIsPress = false
				releaseSinceEnd = true
			case 2:
				st.EndUpdate()
				pressSinceEnd = false
				releaseSinceEnd = false
			}

			test.ExpectEquality(t, st.IsButtonDown(space), lastEdgeIsPress || pressSinceEnd)
			test.ExpectEquality(t, st.IsButtonJustDown(space), pressSinceEnd)
			test.ExpectEquality(t, st.IsButtonJustUp(space), releaseSinceEnd)
			test.ExpectEquality(t, st.IsButtonUp(space), !lastEdgeIsPress)
		}
	}
}

func TestMouseMotion(t *testing.T) {
	st := state.NewInput()

	st.HandleEvent(userinput.MouseMotion{X: 5, Y: 5})
	st.HandleEvent(userinput.MouseMotion{X: 3, Y: 2})
	test.ExpectEquality(t, st.MouseMotion(), [2]float32{8, 7})
	test.ExpectEquality(t, st.Axis2D(buttons.MouseMotion.Axis()), [2]float32{8, 7})
	test.ExpectEquality(t, st.Axis1D(buttons.MouseX.Axis()), 8)
	test.ExpectEquality(t, st.Axis1D(buttons.MouseY.Axis()), 7)

	st.EndUpdate()
	test.ExpectEquality(t, st.MouseMotion(), [2]float32{0, 0})
	test.ExpectEquality(t, st.Axis1D(buttons.MouseX.Axis()), 0)
}

func TestMouseWheel(t *testing.T) {
	st := state.NewInput()

	st.HandleEvent(userinput.MouseWheel{X: 0, Y: 1})
	st.HandleEvent(userinput.MouseWheel{X: 0, Y: 1})
	st.HandleEvent(userinput.MouseWheel{X: -1, Y: 0})
	test.ExpectEquality(t, st.MouseWheel(), [2]float32{-1, 2})
	test.ExpectEquality(t, st.Axis1D(buttons.MouseWheelY.Axis()), 2)
	test.ExpectEquality(t, st.Axis2D(buttons.MouseWheel.Axis()), [2]float32{-1, 2})

	st.EndUpdate()
	test.ExpectEquality(t, st.MouseWheel(), [2]float32{0, 0})
}

func TestCursor(t *testing.T) {
	st := state.NewInput()

	st.HandleEvent(userinput.CursorMoved{X: 100, Y: 50})
	test.ExpectEquality(t, st.CursorPosition(), [2]float32{100, 50})

	st.SetViewportPosition([2]float32{20, 10})
	test.ExpectEquality(t, st.CursorPosition(), [2]float32{80, 40})

	// cursor position is absolute and survives the end of the frame
	st.EndUpdate()
	test.ExpectEquality(t, st.CursorPosition(), [2]float32{80, 40})
}

func TestGamepadAxes(t *testing.T) {
	st := state.NewInput()
	lx := buttons.GamepadLeftStickX.Axis()
	ly := buttons.GamepadLeftStickY.Axis()
	left := buttons.GamepadLeftStick.Axis()
	right := buttons.GamepadRightStick.Axis()
	trigger := buttons.GamepadLeftTriggerAxis.Axis()

	// unreported axes are zero
	test.ExpectEquality(t, st.Axis1D(trigger), 0)
	test.ExpectEquality(t, st.Axis2D(left), [2]float32{0, 0})

	st.HandleEvent(userinput.Axis1DChanged{Axis: trigger, Value: 0.25})
	test.ExpectEquality(t, st.Axis1D(trigger), 0.25)

	// axis values are absolute and last over frames
	st.EndUpdate()
	test.ExpectEquality(t, st.Axis1D(trigger), 0.25)

	// 2D stick composed from its components
	st.HandleEvent(userinput.Axis1DChanged{Axis: lx, Value: 0.5})
	st.HandleEvent(userinput.Axis1DChanged{Axis: ly, Value: -0.5})
	test.ExpectEquality(t, st.Axis2D(left), [2]float32{0.5, -0.5})

	// 1D components taken from a reported 2D stick
	st.HandleEvent(userinput.Axis2DChanged{Axis: right, Value: [2]float32{0.1, 0.2}})
	test.ExpectEquality(t, st.Axis1D(buttons.GamepadRightStickX.Axis()), 0.1)
	test.ExpectEquality(t, st.Axis1D(buttons.GamepadRightStickY.Axis()), 0.2)

	// latest value wins
	st.HandleEvent(userinput.Axis2DChanged{Axis: right, Value: [2]float32{-1, 1}})
	test.ExpectEquality(t, st.Axis2D(right), [2]float32{-1, 1})
}

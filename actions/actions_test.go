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

package actions_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/keybee/actions"
	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/state"
	"github.com/jetsetilly/keybee/test"
	"github.com/jetsetilly/keybee/userinput"
)

var (
	keyA = buttons.KeyA.Button()
	keyD = buttons.KeyD.Button()
	keyW = buttons.KeyW.Button()
	keyS = buttons.KeyS.Button()
)

func press(st *state.Input, b buttons.Button) {
	st.HandleEvent(userinput.ButtonPressed{Button: b})
}

func release(st *state.Input, b buttons.Button) {
	st.HandleEvent(userinput.ButtonReleased{Button: b})
}

func TestEventAndHeld(t *testing.T) {
	st := state.NewInput()
	b := bindings.NewButton(keyA)

	press(st, keyA)
	v, ok := actions.Event{}.Get(st, b)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, v)
	v, ok = actions.Held{}.Get(st, b)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, v)

	st.EndUpdate()
	v, _ = actions.Event{}.Get(st, b)
	test.ExpectFailure(t, v)
	v, _ = actions.Held{}.Get(st, b)
	test.ExpectSuccess(t, v)

	// a tap is seen by both kinds
	release(st, keyA)
	st.EndUpdate()
	press(st, keyA)
	release(st, keyA)
	v, _ = actions.Event{}.Get(st, b)
	test.ExpectSuccess(t, v)
	v, _ = actions.Held{}.Get(st, b)
	test.ExpectSuccess(t, v)
}

func TestButtonsAxis1D(t *testing.T) {
	st := state.NewInput()
	b := bindings.ButtonsAxis1D{Neg: keyA, Pos: keyD, Sensitivity: 2}

	v, ok := actions.Axis1D{}.Get(st, b)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0)

	press(st, keyD)
	v, _ = actions.Axis1D{}.Get(st, b)
	test.ExpectEquality(t, v, 2)

	press(st, keyA)
	v, _ = actions.Axis1D{}.Get(st, b)
	test.ExpectEquality(t, v, 0)

	release(st, keyD)
	st.EndUpdate()
	v, _ = actions.Axis1D{}.Get(st, b)
	test.ExpectEquality(t, v, -2)
}

func TestDeviceAxes(t *testing.T) {
	st := state.NewInput()
	st.HandleEvent(userinput.Axis1DChanged{Axis: buttons.GamepadLeftTriggerAxis.Axis(), Value: 0.5})
	st.HandleEvent(userinput.Axis2DChanged{Axis: buttons.GamepadLeftStick.Axis(), Value: [2]float32{0.25, -0.5}})

	v1, ok := actions.Axis1D{}.Get(st, bindings.DeviceAxis1D{Axis: buttons.GamepadLeftTriggerAxis.Axis(), Sensitivity: 0.5})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v1, 0.25)

	v2, ok := actions.Axis2D{}.Get(st, bindings.DeviceAxis2D{Axis: buttons.GamepadLeftStick.Axis(), Sensitivity: 2})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v2, [2]float32{0.5, -1})
}

func TestIndividualAxes(t *testing.T) {
	st := state.NewInput()
	wasd := bindings.IndividualAxis2D{
		X: bindings.NewButtonsAxis1D(keyA, keyD),
		Y: bindings.NewButtonsAxis1D(keyS, keyW),
	}

	press(st, keyD)
	press(st, keyW)
	v2, ok := actions.Axis2D{}.Get(st, wasd)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v2, [2]float32{1, 1})

	st.HandleEvent(userinput.MouseWheel{X: 0, Y: 3})
	xyz := bindings.IndividualAxis3D{
		X: wasd.X,
		Y: wasd.Y,
		Z: bindings.NewDeviceAxis1D(buttons.MouseWheelY.Axis()),
	}
	v3, ok := actions.Axis3D{}.Get(st, xyz)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v3, [3]float32{1, 1, 3})

	// a missing component makes the binding unusable
	_, ok = actions.Axis3D{}.Get(st, bindings.IndividualAxis3D{X: wasd.X, Y: wasd.Y})
	test.ExpectFailure(t, ok)
}

func TestMismatch(t *testing.T) {
	st := state.NewInput()
	button := bindings.NewButton(keyA)
	axis := bindings.NewButtonsAxis1D(keyA, keyD)
	stick := bindings.NewDeviceAxis2D(buttons.GamepadLeftStick.Axis())

	_, ok := actions.Event{}.Get(st, axis)
	test.ExpectFailure(t, ok)
	_, ok = actions.Held{}.Get(st, stick)
	test.ExpectFailure(t, ok)
	_, ok = actions.Axis1D{}.Get(st, button)
	test.ExpectFailure(t, ok)
	_, ok = actions.Axis2D{}.Get(st, axis)
	test.ExpectFailure(t, ok)
	_, ok = actions.Axis3D{}.Get(st, stick)
	test.ExpectFailure(t, ok)
}

func TestReduceIdentities(t *testing.T) {
	test.ExpectFailure(t, actions.Event{}.Reduce(nil))
	test.ExpectFailure(t, actions.Held{}.Reduce(nil))
	test.ExpectEquality(t, actions.Axis1D{}.Reduce(nil), 0)
	test.ExpectEquality(t, actions.Axis2D{}.Reduce(nil), [2]float32{})
	test.ExpectEquality(t, actions.Axis3D{}.Reduce(nil), [3]float32{})
	test.ExpectEquality(t, actions.NewClamped[float32](actions.Axis1D{}).Reduce(nil), 0)
	test.ExpectEquality(t, actions.NewClamped[[2]float32](actions.Axis2D{}).Reduce(nil), [2]float32{})
}

func TestReduce(t *testing.T) {
	test.ExpectSuccess(t, actions.Event{}.Reduce([]bool{false, true, false}))
	test.ExpectFailure(t, actions.Held{}.Reduce([]bool{false, false}))
	test.ExpectEquality(t, actions.Axis1D{}.Reduce([]float32{1, -0.5, 2}), 2.5)
	test.ExpectEquality(t, actions.Axis2D{}.Reduce([][2]float32{{1, 2}, {3, 4}}), [2]float32{4, 6})
	test.ExpectEquality(t, actions.Axis3D{}.Reduce([][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), [3]float32{1, 1, 1})

	// order does not matter
	a := actions.Axis2D{}.Reduce([][2]float32{{0.5, 1}, {-2, 0.25}, {1, 1}})
	b := actions.Axis2D{}.Reduce([][2]float32{{1, 1}, {0.5, 1}, {-2, 0.25}})
	test.ExpectEquality(t, a, b)
}

func TestClampScalar(t *testing.T) {
	c := actions.NewClamped[float32](actions.Axis1D{})
	test.ExpectEquality(t, c.Reduce([]float32{0.5}), 0.5)
	test.ExpectEquality(t, c.Reduce([]float32{1, 1}), 1)
	test.ExpectEquality(t, c.Reduce([]float32{-3}), -1)

	st := state.NewInput()
	press(st, keyD)
	v, ok := c.Get(st, bindings.ButtonsAxis1D{Neg: keyA, Pos: keyD, Sensitivity: 5})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1)

	_, ok = c.Get(st, bindings.NewButton(keyD))
	test.ExpectFailure(t, ok)
}

func length(v [2]float32) float64 {
	return math.Hypot(float64(v[0]), float64(v[1]))
}

func TestClampVector(t *testing.T) {
	c := actions.NewClamped[[2]float32](actions.Axis2D{})

	// short vectors pass through unchanged
	test.ExpectEquality(t, c.Reduce([][2]float32{{0.3, 0.4}}), [2]float32{0.3, 0.4})

	// long vectors keep their direction
	v := c.Reduce([][2]float32{{3, 4}})
	test.ExpectApproximate(t, length(v), 1, 0.0001)
	test.ExpectApproximate(t, v[0], 0.6, 0.0001)
	test.ExpectApproximate(t, v[1], 0.8, 0.0001)

	// diagonal movement from two held keys is not faster than straight
	// movement
	st := state.NewInput()
	press(st, keyD)
	press(st, keyW)
	wasd := bindings.IndividualAxis2D{
		X: bindings.NewButtonsAxis1D(keyA, keyD),
		Y: bindings.NewButtonsAxis1D(keyS, keyW),
	}
	v, ok := c.Get(st, wasd)
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, length(v), 1, 0.0001)
	test.ExpectApproximate(t, v[0], v[1], 0.0001)

	c3 := actions.NewClamped[[3]float32](actions.Axis3D{})
	v3 := c3.Reduce([][3]float32{{0, 0, -10}})
	test.ExpectApproximate(t, v3[2], -1, 0.0001)
	test.ExpectEquality(t, v3[0], 0)
}

func TestClampInfinite(t *testing.T) {
	c := actions.NewClamped[[2]float32](actions.Axis2D{})
	test.ExpectEquality(t, c.Reduce([][2]float32{{float32(math.Inf(1)), 0.5}}), [2]float32{1, 0})
	test.ExpectEquality(t, c.Reduce([][2]float32{{0, float32(math.Inf(-1))}}), [2]float32{0, -1})

	v := c.Reduce([][2]float32{{float32(math.Inf(1)), float32(math.Inf(-1))}})
	test.ExpectApproximate(t, length(v), 1, 0.0001)
	test.ExpectApproximate(t, v[0], -v[1], 0.0001)

	c3 := actions.NewClamped[[3]float32](actions.Axis3D{})
	test.ExpectEquality(t, c3.Reduce([][3]float32{{2, float32(math.Inf(1)), 3}}), [3]float32{0, 1, 0})

	s := actions.NewClamped[float32](actions.Axis1D{})
	test.ExpectEquality(t, s.Reduce([]float32{float32(math.Inf(-1))}), -1)
}

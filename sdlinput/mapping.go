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

package sdlinput

import (
	"github.com/jetsetilly/keybee/buttons"
	"github.com/veandco/go-sdl2/sdl"
)

var keys = map[sdl.Scancode]buttons.KeyboardKey{
	sdl.SCANCODE_A: buttons.KeyA,
	sdl.SCANCODE_B: buttons.KeyB,
	sdl.SCANCODE_C: buttons.KeyC,
	sdl.SCANCODE_D: buttons.KeyD,
	sdl.SCANCODE_E: buttons.KeyE,
	sdl.SCANCODE_F: buttons.KeyF,
	sdl.SCANCODE_G: buttons.KeyG,
	sdl.SCANCODE_H: buttons.KeyH,
	sdl.SCANCODE_I: buttons.KeyI,
	sdl.SCANCODE_J: buttons.KeyJ,
	sdl.SCANCODE_K: buttons.KeyK,
	sdl.SCANCODE_L: buttons.KeyL,
	sdl.SCANCODE_M: buttons.KeyM,
	sdl.SCANCODE_N: buttons.KeyN,
	sdl.SCANCODE_O: buttons.KeyO,
	sdl.SCANCODE_P: buttons.KeyP,
	sdl.SCANCODE_Q: buttons.KeyQ,
	sdl.SCANCODE_R: buttons.KeyR,
	sdl.SCANCODE_S: buttons.KeyS,
	sdl.SCANCODE_T: buttons.KeyT,
	sdl.SCANCODE_U: buttons.KeyU,
	sdl.SCANCODE_V: buttons.KeyV,
	sdl.SCANCODE_W: buttons.KeyW,
	sdl.SCANCODE_X: buttons.KeyX,
	sdl.SCANCODE_Y: buttons.KeyY,
	sdl.SCANCODE_Z: buttons.KeyZ,

	sdl.SCANCODE_0: buttons.Key0,
	sdl.SCANCODE_1: buttons.Key1,
	sdl.SCANCODE_2: buttons.Key2,
	sdl.SCANCODE_3: buttons.Key3,
	sdl.SCANCODE_4: buttons.Key4,
	sdl.SCANCODE_5: buttons.Key5,
	sdl.SCANCODE_6: buttons.Key6,
	sdl.SCANCODE_7: buttons.Key7,
	sdl.SCANCODE_8: buttons.Key8,
	sdl.SCANCODE_9: buttons.Key9,

	sdl.SCANCODE_F1:  buttons.KeyF1,
	sdl.SCANCODE_F2:  buttons.KeyF2,
	sdl.SCANCODE_F3:  buttons.KeyF3,
	sdl.SCANCODE_F4:  buttons.KeyF4,
	sdl.SCANCODE_F5:  buttons.KeyF5,
	sdl.SCANCODE_F6:  buttons.KeyF6,
	sdl.SCANCODE_F7:  buttons.KeyF7,
	sdl.SCANCODE_F8:  buttons.KeyF8,
	sdl.SCANCODE_F9:  buttons.KeyF9,
	sdl.SCANCODE_F10: buttons.KeyF10,
	sdl.SCANCODE_F11: buttons.KeyF11,
	sdl.SCANCODE_F12: buttons.KeyF12,
	sdl.SCANCODE_F13: buttons.KeyF13,
	sdl.SCANCODE_F14: buttons.KeyF14,
	sdl.SCANCODE_F15: buttons.KeyF15,
	sdl.SCANCODE_F16: buttons.KeyF16,
	sdl.SCANCODE_F17: buttons.KeyF17,
	sdl.SCANCODE_F18: buttons.KeyF18,
	sdl.SCANCODE_F19: buttons.KeyF19,
	sdl.SCANCODE_F20: buttons.KeyF20,
	sdl.SCANCODE_F21: buttons.KeyF21,
	sdl.SCANCODE_F22: buttons.KeyF22,
	sdl.SCANCODE_F23: buttons.KeyF23,
	sdl.SCANCODE_F24: buttons.KeyF24,

	sdl.SCANCODE_UP:    buttons.KeyUp,
	sdl.SCANCODE_DOWN:  buttons.KeyDown,
	sdl.SCANCODE_LEFT:  buttons.KeyLeft,
	sdl.SCANCODE_RIGHT: buttons.KeyRight,

	sdl.SCANCODE_SPACE:     buttons.KeySpace,
	sdl.SCANCODE_LSHIFT:    buttons.KeyLShift,
	sdl.SCANCODE_RSHIFT:    buttons.KeyRShift,
	sdl.SCANCODE_LCTRL:     buttons.KeyLControl,
	sdl.SCANCODE_RCTRL:     buttons.KeyRControl,
	sdl.SCANCODE_LALT:      buttons.KeyLAlt,
	sdl.SCANCODE_RALT:      buttons.KeyRAlt,
	sdl.SCANCODE_ESCAPE:    buttons.KeyEscape,
	sdl.SCANCODE_RETURN:    buttons.KeyEnter,
	sdl.SCANCODE_TAB:       buttons.KeyTab,
	sdl.SCANCODE_BACKSPACE: buttons.KeyBackspace,
}

func mouseButton(b uint8) (buttons.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return buttons.MouseButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return buttons.MouseButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return buttons.MouseButtonMiddle, true
	case sdl.BUTTON_X1:
		return buttons.MouseButton4, true
	case sdl.BUTTON_X2:
		return buttons.MouseButton5, true
	}
	return 0, false
}

func controllerButton(b sdl.GameControllerButton) (buttons.GamepadButton, bool) {
	switch b {
	case sdl.CONTROLLER_BUTTON_A:
		return buttons.GamepadA, true
	case sdl.CONTROLLER_BUTTON_B:
		return buttons.GamepadB, true
	case sdl.CONTROLLER_BUTTON_X:
		return buttons.GamepadX, true
	case sdl.CONTROLLER_BUTTON_Y:
		return buttons.GamepadY, true
	case sdl.CONTROLLER_BUTTON_BACK:
		return buttons.GamepadSelect, true
	case sdl.CONTROLLER_BUTTON_START:
		return buttons.GamepadStart, true
	case sdl.CONTROLLER_BUTTON_LEFTSTICK:
		return buttons.GamepadLeftThumb, true
	case sdl.CONTROLLER_BUTTON_RIGHTSTICK:
		return buttons.GamepadRightThumb, true
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return buttons.GamepadLeftShoulder, true
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return buttons.GamepadRightShoulder, true
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return buttons.GamepadDpadUp, true
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return buttons.GamepadDpadDown, true
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return buttons.GamepadDpadLeft, true
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return buttons.GamepadDpadRight, true
	}
	return 0, false
}

func controllerAxis(a sdl.GameControllerAxis) (buttons.GamepadAxis1D, bool) {
	switch a {
	case sdl.CONTROLLER_AXIS_LEFTX:
		return buttons.GamepadLeftStickX, true
	case sdl.CONTROLLER_AXIS_LEFTY:
		return buttons.GamepadLeftStickY, true
	case sdl.CONTROLLER_AXIS_RIGHTX:
		return buttons.GamepadRightStickX, true
	case sdl.CONTROLLER_AXIS_RIGHTY:
		return buttons.GamepadRightStickY, true
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		return buttons.GamepadLeftTriggerAxis, true
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		return buttons.GamepadRightTriggerAxis, true
	}
	return 0, false
}

// the buttons that are pressed when an axis moves past the threshold. the
// first button is for the negative direction and the second for the
// positive direction. the triggers have no negative direction
type axisButtons struct {
	neg, pos buttons.GamepadButton
	hasNeg   bool
}

var digitalAxes = map[buttons.GamepadAxis1D]axisButtons{
	buttons.GamepadLeftStickX:       {neg: buttons.GamepadLeftStickLeft, pos: buttons.GamepadLeftStickRight, hasNeg: true},
	buttons.GamepadLeftStickY:       {neg: buttons.GamepadLeftStickUp, pos: buttons.GamepadLeftStickDown, hasNeg: true},
	buttons.GamepadRightStickX:      {neg: buttons.GamepadRightStickLeft, pos: buttons.GamepadRightStickRight, hasNeg: true},
	buttons.GamepadRightStickY:      {neg: buttons.GamepadRightStickUp, pos: buttons.GamepadRightStickDown, hasNeg: true},
	buttons.GamepadLeftTriggerAxis:  {pos: buttons.GamepadLeftTrigger},
	buttons.GamepadRightTriggerAxis: {pos: buttons.GamepadRightTrigger},
}

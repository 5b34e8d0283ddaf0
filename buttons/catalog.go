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

package buttons

// KeyboardKey enumerates the supported keys of the keyboard.
type KeyboardKey uint16

// List of valid KeyboardKey values.
const (
	KeyA KeyboardKey = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace
	KeyLShift
	KeyRShift
	KeyLControl
	KeyRControl
	KeyLAlt
	KeyRAlt
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	numKeyboardKeys
)

var keyboardNames = [numKeyboardKeys]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",

	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",

	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
	"f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20", "f21", "f22", "f23", "f24",

	"up", "down", "left", "right",

	"space", "leftshift", "rightshift", "leftctrl", "rightctrl",
	"leftalt", "rightalt", "escape", "enter", "tab", "backspace",
}

// Button returns the Button identifier for the key.
func (k KeyboardKey) Button() Button {
	return Button{Device: Keyboard, Code: uint16(k)}
}

func (k KeyboardKey) String() string {
	return k.Button().String()
}

// MouseButton enumerates the buttons of the mouse.
type MouseButton uint16

// List of valid MouseButton values. Button1 to Button3 are the left, right
// and middle buttons. Button4 and Button5 are the two side buttons.
const (
	MouseButton1 MouseButton = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5

	numMouseButtons
)

// Convenient aliases for the three main mouse buttons.
const (
	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

var mouseButtonNames = [numMouseButtons]string{
	"button1", "button2", "button3", "button4", "button5",
}

// Button returns the Button identifier for the mouse button.
func (m MouseButton) Button() Button {
	return Button{Device: Mouse, Code: uint16(m)}
}

func (m MouseButton) String() string {
	return m.Button().String()
}

// GamepadButton enumerates the buttons of a gamepad. The thumbstick direction
// buttons allow a thumbstick to be bound as if it was a digital pad. It is the
// responsibility of the adapter to generate events for them.
type GamepadButton uint16

// List of valid GamepadButton values.
const (
	GamepadA GamepadButton = iota
	GamepadB
	GamepadX
	GamepadY
	GamepadDpadUp
	GamepadDpadDown
	GamepadDpadLeft
	GamepadDpadRight

	GamepadLeftStickLeft
	GamepadLeftStickRight
	GamepadLeftStickUp
	GamepadLeftStickDown

	GamepadRightStickLeft
	GamepadRightStickRight
	GamepadRightStickUp
	GamepadRightStickDown

	GamepadLeftShoulder
	GamepadRightShoulder
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadLeftThumb
	GamepadRightThumb
	GamepadSelect
	GamepadStart

	numGamepadButtons
)

var gamepadButtonNames = [numGamepadButtons]string{
	"a", "b", "x", "y",
	"dpadup", "dpaddown", "dpadleft", "dpadright",
	"leftstickleft", "leftstickright", "leftstickup", "leftstickdown",
	"rightstickleft", "rightstickright", "rightstickup", "rightstickdown",
	"leftshoulder", "rightshoulder", "lefttrigger", "righttrigger",
	"leftthumb", "rightthumb", "select", "start",
}

// Button returns the Button identifier for the gamepad button.
func (g GamepadButton) Button() Button {
	return Button{Device: Gamepad, Code: uint16(g)}
}

func (g GamepadButton) String() string {
	return g.Button().String()
}

// MouseAxis1D enumerates the one dimensional axes of the mouse. These are
// relative values and are measured over the course of a single frame.
type MouseAxis1D uint16

// List of valid MouseAxis1D values.
const (
	MouseX MouseAxis1D = iota
	MouseY
	MouseWheelX
	MouseWheelY

	numMouseAxes1D
)

var mouseAxis1DNames = [numMouseAxes1D]string{
	"x", "y", "wheelx", "wheely",
}

// Axis returns the Axis1D identifier for the mouse axis.
func (m MouseAxis1D) Axis() Axis1D {
	return Axis1D{Device: Mouse, Code: uint16(m)}
}

func (m MouseAxis1D) String() string {
	return m.Axis().String()
}

// MouseAxis2D enumerates the two dimensional axes of the mouse.
type MouseAxis2D uint16

// List of valid MouseAxis2D values.
const (
	MouseMotion MouseAxis2D = iota
	MouseWheel

	numMouseAxes2D
)

var mouseAxis2DNames = [numMouseAxes2D]string{
	"motion", "wheel",
}

// Axis returns the Axis2D identifier for the mouse axis.
func (m MouseAxis2D) Axis() Axis2D {
	return Axis2D{Device: Mouse, Code: uint16(m)}
}

func (m MouseAxis2D) String() string {
	return m.Axis().String()
}

// GamepadAxis1D enumerates the one dimensional axes of a gamepad. Stick axes
// are in the range -1 to 1 and triggers in the range 0 to 1.
type GamepadAxis1D uint16

// List of valid GamepadAxis1D values.
const (
	GamepadLeftStickX GamepadAxis1D = iota
	GamepadLeftStickY
	GamepadRightStickX
	GamepadRightStickY
	GamepadLeftTriggerAxis
	GamepadRightTriggerAxis
	GamepadDpadX
	GamepadDpadY

	numGamepadAxes1D
)

var gamepadAxis1DNames = [numGamepadAxes1D]string{
	"leftstickx", "leftsticky", "rightstickx", "rightsticky",
	"lefttrigger", "righttrigger", "dpadx", "dpady",
}

// Axis returns the Axis1D identifier for the gamepad axis.
func (g GamepadAxis1D) Axis() Axis1D {
	return Axis1D{Device: Gamepad, Code: uint16(g)}
}

func (g GamepadAxis1D) String() string {
	return g.Axis().String()
}

// GamepadAxis2D enumerates the thumbsticks of a gamepad.
type GamepadAxis2D uint16

// List of valid GamepadAxis2D values.
const (
	GamepadLeftStick GamepadAxis2D = iota
	GamepadRightStick

	numGamepadAxes2D
)

var gamepadAxis2DNames = [numGamepadAxes2D]string{
	"leftstick", "rightstick",
}

// Axis returns the Axis2D identifier for the gamepad stick.
func (g GamepadAxis2D) Axis() Axis2D {
	return Axis2D{Device: Gamepad, Code: uint16(g)}
}

func (g GamepadAxis2D) String() string {
	return g.Axis().String()
}

// the 1D components of each 2D axis. the table is indexed by device and then
// by 2D axis code
var components = map[Device][][2]Axis1D{
	Mouse: {
		MouseMotion: {MouseX.Axis(), MouseY.Axis()},
		MouseWheel:  {MouseWheelX.Axis(), MouseWheelY.Axis()},
	},
	Gamepad: {
		GamepadLeftStick:  {GamepadLeftStickX.Axis(), GamepadLeftStickY.Axis()},
		GamepadRightStick: {GamepadRightStickX.Axis(), GamepadRightStickY.Axis()},
	},
}

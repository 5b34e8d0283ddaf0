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

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/jetsetilly/keybee/curated"
)

// Error patterns returned by the Parse functions. Use with curated.Is().
const (
	MalformedInput = "buttons: malformed input: %q"
	UnknownDevice  = "buttons: unknown device: %q"
	UnknownInput   = "buttons: unknown %s input: %q"
)

// Device identifies the type of physical device an input belongs to.
type Device int

// List of valid Device values.
const (
	Keyboard Device = iota
	Mouse
	Gamepad
)

func (d Device) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	case Gamepad:
		return "gamepad"
	}
	return fmt.Sprintf("device%d", int(d))
}

func parseDevice(s string) (Device, error) {
	switch s {
	case "keyboard":
		return Keyboard, nil
	case "mouse":
		return Mouse, nil
	case "gamepad":
		return Gamepad, nil
	}
	return 0, curated.Errorf(UnknownDevice, s)
}

// the names of each input type for each device
var (
	buttonNames = map[Device][]string{
		Keyboard: keyboardNames[:],
		Mouse:    mouseButtonNames[:],
		Gamepad:  gamepadButtonNames[:],
	}
	axis1DNames = map[Device][]string{
		Mouse:   mouseAxis1DNames[:],
		Gamepad: gamepadAxis1DNames[:],
	}
	axis2DNames = map[Device][]string{
		Mouse:   mouseAxis2DNames[:],
		Gamepad: gamepadAxis2DNames[:],
	}
)

// reverse lookups of the name tables, created on init()
var (
	buttonCodes map[Device]map[string]uint16
	axis1DCodes map[Device]map[string]uint16
	axis2DCodes map[Device]map[string]uint16
)

func reverse(names map[Device][]string) map[Device]map[string]uint16 {
	r := make(map[Device]map[string]uint16)
	for d, n := range names {
		r[d] = make(map[string]uint16)
		for i, s := range n {
			r[d][s] = uint16(i)
		}
	}
	return r
}

func init() {
	buttonCodes = reverse(buttonNames)
	axis1DCodes = reverse(axis1DNames)
	axis2DCodes = reverse(axis2DNames)
}

// name returns the string form of the device/code pair. an unknown code is
// still given a unique name
func name(names map[Device][]string, d Device, code uint16) string {
	n := names[d]
	if int(code) < len(n) {
		return fmt.Sprintf("%s/%s", d, n[code])
	}
	return fmt.Sprintf("%s/%d", d, code)
}

// parse splits the string form into device and code
func parse(codes map[Device]map[string]uint16, kind string, s string) (Device, uint16, error) {
	dev, input, ok := strings.Cut(s, "/")
	if !ok || input == "" {
		return 0, 0, curated.Errorf(MalformedInput, s)
	}

	d, err := parseDevice(dev)
	if err != nil {
		return 0, 0, err
	}

	code, ok := codes[d][input]
	if !ok {
		return 0, 0, curated.Errorf(UnknownInput, fmt.Sprintf("%s %s", d, kind), input)
	}

	return d, code, nil
}

// Button identifies a digital input on a device.
type Button struct {
	Device Device
	Code   uint16
}

func (b Button) String() string {
	return name(buttonNames, b.Device, b.Code)
}

// Compare returns -1, 0 or +1 depending on whether b is ordered before, is
// equal to or is ordered after o. Buttons are ordered by device and then by
// code.
func (b Button) Compare(o Button) int {
	if c := cmp.Compare(b.Device, o.Device); c != 0 {
		return c
	}
	return cmp.Compare(b.Code, o.Code)
}

// ParseButton converts the string form of a Button, as returned by String(),
// into a Button.
func ParseButton(s string) (Button, error) {
	d, c, err := parse(buttonCodes, "button", s)
	if err != nil {
		return Button{}, err
	}
	return Button{Device: d, Code: c}, nil
}

// Axis1D identifies a one dimensional analog input on a device.
type Axis1D struct {
	Device Device
	Code   uint16
}

func (a Axis1D) String() string {
	return name(axis1DNames, a.Device, a.Code)
}

// Compare returns -1, 0 or +1 in the same way as Button.Compare().
func (a Axis1D) Compare(o Axis1D) int {
	if c := cmp.Compare(a.Device, o.Device); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, o.Code)
}

// Parent returns the 2D axis that the axis is a component of, along with the
// index of the component (0 for X and 1 for Y). Returns false if the axis is
// not part of a 2D axis.
func (a Axis1D) Parent() (Axis2D, int, bool) {
	for i, c := range components[a.Device] {
		for j := range c {
			if c[j] == a {
				return Axis2D{Device: a.Device, Code: uint16(i)}, j, true
			}
		}
	}
	return Axis2D{}, 0, false
}

// ParseAxis1D converts the string form of an Axis1D into an Axis1D.
func ParseAxis1D(s string) (Axis1D, error) {
	d, c, err := parse(axis1DCodes, "axis1d", s)
	if err != nil {
		return Axis1D{}, err
	}
	return Axis1D{Device: d, Code: c}, nil
}

// Axis2D identifies a two dimensional analog input on a device.
type Axis2D struct {
	Device Device
	Code   uint16
}

func (a Axis2D) String() string {
	return name(axis2DNames, a.Device, a.Code)
}

// Compare returns -1, 0 or +1 in the same way as Button.Compare().
func (a Axis2D) Compare(o Axis2D) int {
	if c := cmp.Compare(a.Device, o.Device); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, o.Code)
}

// Components returns the X and Y axes that make up the 2D axis. Returns false
// if the axis is unknown.
func (a Axis2D) Components() (Axis1D, Axis1D, bool) {
	c := components[a.Device]
	if int(a.Code) >= len(c) {
		return Axis1D{}, Axis1D{}, false
	}
	return c[a.Code][0], c[a.Code][1], true
}

// ParseAxis2D converts the string form of an Axis2D into an Axis2D.
func ParseAxis2D(s string) (Axis2D, error) {
	d, c, err := parse(axis2DCodes, "axis2d", s)
	if err != nil {
		return Axis2D{}, err
	}
	return Axis2D{Device: d, Code: c}, nil
}

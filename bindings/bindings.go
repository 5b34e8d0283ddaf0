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

package bindings

import (
	"fmt"

	"github.com/jetsetilly/keybee/buttons"
)

// Binding is implemented by every binding variant. The interface is sealed.
type Binding interface {
	fmt.Stringer
	binding()
}

// Axis1DBinding is implemented by the variants that produce a single value.
// They can be used as the components of IndividualAxis2D and
// IndividualAxis3D.
type Axis1DBinding interface {
	Binding
	axis1D()
}

// Axis2DBinding is implemented by the variants that produce two values.
type Axis2DBinding interface {
	Binding
	axis2D()
}

// Button binds a single digital input.
type Button struct {
	Button buttons.Button
}

// ButtonsAxis1D makes a one dimensional axis from two buttons. Holding Pos
// gives +Sensitivity and holding Neg gives -Sensitivity. Holding both
// gives zero.
type ButtonsAxis1D struct {
	Neg         buttons.Button
	Pos         buttons.Button
	Sensitivity float32
}

// DeviceAxis1D binds an analog axis, scaled by Sensitivity.
type DeviceAxis1D struct {
	Axis        buttons.Axis1D
	Sensitivity float32
}

// IndividualAxis2D makes a two dimensional axis from two one dimensional
// bindings.
type IndividualAxis2D struct {
	X Axis1DBinding
	Y Axis1DBinding
}

// DeviceAxis2D binds a two dimensional analog axis, scaled by Sensitivity.
type DeviceAxis2D struct {
	Axis        buttons.Axis2D
	Sensitivity float32
}

// IndividualAxis3D makes a three dimensional axis from three one dimensional
// bindings. There are no three dimensional device axes.
type IndividualAxis3D struct {
	X Axis1DBinding
	Y Axis1DBinding
	Z Axis1DBinding
}

func (Button) binding()           {}
func (ButtonsAxis1D) binding()    {}
func (DeviceAxis1D) binding()     {}
func (IndividualAxis2D) binding() {}
func (DeviceAxis2D) binding()     {}
func (IndividualAxis3D) binding() {}

func (ButtonsAxis1D) axis1D() {}
func (DeviceAxis1D) axis1D()  {}

func (IndividualAxis2D) axis2D() {}
func (DeviceAxis2D) axis2D()     {}

func (b Button) String() string {
	return b.Button.String()
}

func (b ButtonsAxis1D) String() string {
	return fmt.Sprintf("%s/%s x%g", b.Neg, b.Pos, b.Sensitivity)
}

func (b DeviceAxis1D) String() string {
	return fmt.Sprintf("%s x%g", b.Axis, b.Sensitivity)
}

func (b IndividualAxis2D) String() string {
	return fmt.Sprintf("(%s, %s)", b.X, b.Y)
}

func (b DeviceAxis2D) String() string {
	return fmt.Sprintf("%s x%g", b.Axis, b.Sensitivity)
}

func (b IndividualAxis3D) String() string {
	return fmt.Sprintf("(%s, %s, %s)", b.X, b.Y, b.Z)
}

// Shorthand constructors. The axis constructors use a sensitivity of one.

// NewButton binds a single button.
func NewButton(b buttons.Button) Button {
	return Button{Button: b}
}

// NewButtonsAxis1D makes an axis from a negative and positive button.
func NewButtonsAxis1D(neg, pos buttons.Button) ButtonsAxis1D {
	return ButtonsAxis1D{Neg: neg, Pos: pos, Sensitivity: 1}
}

// NewDeviceAxis1D binds an analog axis.
func NewDeviceAxis1D(a buttons.Axis1D) DeviceAxis1D {
	return DeviceAxis1D{Axis: a, Sensitivity: 1}
}

// NewDeviceAxis2D binds a two dimensional analog axis.
func NewDeviceAxis2D(a buttons.Axis2D) DeviceAxis2D {
	return DeviceAxis2D{Axis: a, Sensitivity: 1}
}

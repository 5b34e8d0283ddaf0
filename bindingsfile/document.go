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

package bindingsfile

// the document model shared by the YAML and TOML encodings. set name ->
// action name -> list of entries
type document map[string]map[string][]entry

// entry must have exactly one non-empty field
type entry struct {
	Button string  `yaml:"button,omitempty" toml:"button,omitempty"`
	Axis1D *axis1D `yaml:"axis1d,omitempty" toml:"axis1d,omitempty"`
	Axis2D *axis2D `yaml:"axis2d,omitempty" toml:"axis2d,omitempty"`
	Axis3D *axis3D `yaml:"axis3d,omitempty" toml:"axis3d,omitempty"`
}

// axis1D has either Neg and Pos or Axis
type axis1D struct {
	Neg         string   `yaml:"neg,omitempty" toml:"neg,omitempty"`
	Pos         string   `yaml:"pos,omitempty" toml:"pos,omitempty"`
	Axis        string   `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Sensitivity *float32 `yaml:"sensitivity,omitempty" toml:"sensitivity,omitempty"`
}

// axis2D has either X and Y or Axis
type axis2D struct {
	X           *axis1D  `yaml:"x,omitempty" toml:"x,omitempty"`
	Y           *axis1D  `yaml:"y,omitempty" toml:"y,omitempty"`
	Axis        string   `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Sensitivity *float32 `yaml:"sensitivity,omitempty" toml:"sensitivity,omitempty"`
}

type axis3D struct {
	X *axis1D `yaml:"x" toml:"x"`
	Y *axis1D `yaml:"y" toml:"y"`
	Z *axis1D `yaml:"z" toml:"z"`
}

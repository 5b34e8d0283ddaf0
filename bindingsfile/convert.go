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

import (
	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/curated"
)

// location of an entry in the document, for error messages
type location struct {
	action string
	idx    int
}

func (loc location) malformed(detail string) error {
	return curated.Errorf(MalformedEntry, loc.action, loc.idx, detail)
}

func (loc location) unknown(err error) error {
	return curated.Errorf(UnknownInput, loc.action, loc.idx, err)
}

// toTable converts the document into a bindings table. the first error stops
// the conversion and no table is returned
func toTable(doc document) (bindings.Table, error) {
	tab := make(bindings.Table, len(doc))
	for set, actions := range doc {
		if !bindings.ValidSetName(set) {
			return nil, curated.Errorf(IllegalSetName, set, bindings.Separator)
		}
		s := make(bindings.ActionSet, len(actions))
		for action, entries := range actions {
			list := make([]bindings.Binding, 0, len(entries))
			for i, e := range entries {
				b, err := e.binding(location{action: bindings.FullName(set, action), idx: i})
				if err != nil {
					return nil, err
				}
				list = append(list, b)
			}
			s[action] = list
		}
		tab[set] = s
	}
	return tab, nil
}

func (e entry) binding(loc location) (bindings.Binding, error) {
	n := 0
	if e.Button != "" {
		n++
	}
	if e.Axis1D != nil {
		n++
	}
	if e.Axis2D != nil {
		n++
	}
	if e.Axis3D != nil {
		n++
	}
	switch n {
	case 0:
		return nil, loc.malformed("no binding")
	case 1:
	default:
		return nil, loc.malformed("more than one binding")
	}

	switch {
	case e.Button != "":
		b, err := buttons.ParseButton(e.Button)
		if err != nil {
			return nil, loc.unknown(err)
		}
		return bindings.NewButton(b), nil
	case e.Axis1D != nil:
		b, err := e.Axis1D.binding(loc)
		if err != nil {
			return nil, err
		}
		return b, nil
	case e.Axis2D != nil:
		return e.Axis2D.binding(loc)
	}
	return e.Axis3D.binding(loc)
}

func sensitivity(s *float32) float32 {
	if s == nil {
		return 1
	}
	return *s
}

func (a *axis1D) binding(loc location) (bindings.Axis1DBinding, error) {
	if a == nil {
		return nil, loc.malformed("missing axis component")
	}

	switch {
	case a.Axis != "" && a.Neg == "" && a.Pos == "":
		ax, err := buttons.ParseAxis1D(a.Axis)
		if err != nil {
			return nil, loc.unknown(err)
		}
		return bindings.DeviceAxis1D{Axis: ax, Sensitivity: sensitivity(a.Sensitivity)}, nil

	case a.Axis == "" && a.Neg != "" && a.Pos != "":
		neg, err := buttons.ParseButton(a.Neg)
		if err != nil {
			return nil, loc.unknown(err)
		}
		pos, err := buttons.ParseButton(a.Pos)
		if err != nil {
			return nil, loc.unknown(err)
		}
		return bindings.ButtonsAxis1D{Neg: neg, Pos: pos, Sensitivity: sensitivity(a.Sensitivity)}, nil
	}

	return nil, loc.malformed("axis1d needs either neg and pos or axis")
}

func (a *axis2D) binding(loc location) (bindings.Binding, error) {
	switch {
	case a.Axis != "" && a.X == nil && a.Y == nil:
		ax, err := buttons.ParseAxis2D(a.Axis)
		if err != nil {
			return nil, loc.unknown(err)
		}
		return bindings.DeviceAxis2D{Axis: ax, Sensitivity: sensitivity(a.Sensitivity)}, nil

	case a.Axis == "" && a.X != nil && a.Y != nil:
		if a.Sensitivity != nil {
			return nil, loc.malformed("axis2d sensitivity only applies to a device axis")
		}
		x, err := a.X.binding(loc)
		if err != nil {
			return nil, err
		}
		y, err := a.Y.binding(loc)
		if err != nil {
			return nil, err
		}
		return bindings.IndividualAxis2D{X: x, Y: y}, nil
	}

	return nil, loc.malformed("axis2d needs either x and y or axis")
}

func (a *axis3D) binding(loc location) (bindings.Binding, error) {
	x, err := a.X.binding(loc)
	if err != nil {
		return nil, err
	}
	y, err := a.Y.binding(loc)
	if err != nil {
		return nil, err
	}
	z, err := a.Z.binding(loc)
	if err != nil {
		return nil, err
	}
	return bindings.IndividualAxis3D{X: x, Y: y, Z: z}, nil
}

// fromTable converts a bindings table into a document. bindings that have
// no document form are dropped
func fromTable(tab bindings.Table) document {
	doc := make(document, len(tab))
	for set, actions := range tab {
		d := make(map[string][]entry, len(actions))
		for action, list := range actions {
			entries := make([]entry, 0, len(list))
			for _, b := range list {
				if e, ok := toEntry(b); ok {
					entries = append(entries, e)
				}
			}
			d[action] = entries
		}
		doc[set] = d
	}
	return doc
}

// sensitivity is only written if it is not the default
func sensitivityPtr(s float32) *float32 {
	if s == 1 {
		return nil
	}
	return &s
}

func toAxis1D(b bindings.Axis1DBinding) *axis1D {
	switch b := b.(type) {
	case bindings.ButtonsAxis1D:
		return &axis1D{Neg: b.Neg.String(), Pos: b.Pos.String(), Sensitivity: sensitivityPtr(b.Sensitivity)}
	case bindings.DeviceAxis1D:
		return &axis1D{Axis: b.Axis.String(), Sensitivity: sensitivityPtr(b.Sensitivity)}
	}
	return nil
}

func toEntry(b bindings.Binding) (entry, bool) {
	switch b := b.(type) {
	case bindings.Button:
		return entry{Button: b.Button.String()}, true
	case bindings.ButtonsAxis1D, bindings.DeviceAxis1D:
		return entry{Axis1D: toAxis1D(b.(bindings.Axis1DBinding))}, true
	case bindings.DeviceAxis2D:
		return entry{Axis2D: &axis2D{Axis: b.Axis.String(), Sensitivity: sensitivityPtr(b.Sensitivity)}}, true
	case bindings.IndividualAxis2D:
		x, y := toAxis1D(b.X), toAxis1D(b.Y)
		if x == nil || y == nil {
			return entry{}, false
		}
		return entry{Axis2D: &axis2D{X: x, Y: y}}, true
	case bindings.IndividualAxis3D:
		x, y, z := toAxis1D(b.X), toAxis1D(b.Y), toAxis1D(b.Z)
		if x == nil || y == nil || z == nil {
			return entry{}, false
		}
		return entry{Axis3D: &axis3D{X: x, Y: y, Z: z}}, true
	}
	return entry{}, false
}

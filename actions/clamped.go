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

package actions

import (
	"math"

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/state"
)

// Clampable is the set of value types that can be used with Clamped.
type Clampable interface {
	float32 | [2]float32 | [3]float32
}

// Limit is the maximum length of a Clamped value.
const Limit = 1.0

// Clamped wraps an axis kind so that the value never has a length greater
// than Limit. A scalar is clamped to the range -Limit to +Limit. A vector
// that is too long is scaled down, keeping its direction. Shorter vectors are
// unchanged.
//
// The limit is applied to the value of each binding and again to the reduced
// value of the action.
type Clamped[T Clampable] struct {
	Kind Kind[T]
}

// NewClamped is the preferred method of initialisation for the Clamped type.
// Type inference cannot see through the Kind interface so the type parameter
// must be given:
//
//	actions.NewClamped[[2]float32](actions.Axis2D{})
func NewClamped[T Clampable](k Kind[T]) Clamped[T] {
	return Clamped[T]{Kind: k}
}

func (Clamped[T]) kind() {}

// Get implements the Kind interface.
func (c Clamped[T]) Get(st *state.Input, b bindings.Binding) (T, bool) {
	v, ok := c.Kind.Get(st, b)
	if !ok {
		return v, false
	}
	return clamp(v, Limit), true
}

// Reduce implements the Kind interface.
func (c Clamped[T]) Reduce(values []T) T {
	return clamp(c.Kind.Reduce(values), Limit)
}

func clamp[T Clampable](v T, limit float32) T {
	switch w := any(v).(type) {
	case float32:
		return any(min(max(w, -limit), limit)).(T)
	case [2]float32:
		clampVector(w[:], limit)
		return any(w).(T)
	case [3]float32:
		clampVector(w[:], limit)
		return any(w).(T)
	}
	return v
}

// clampVector rescales the vector in place so that its length is no more than
// limit. a vector with infinite components points along those components
func clampVector(v []float32, limit float32) {
	var inf bool
	for _, c := range v {
		if math.IsInf(float64(c), 0) {
			inf = true
			break
		}
	}
	if inf {
		for i, c := range v {
			switch {
			case math.IsInf(float64(c), 1):
				v[i] = 1
			case math.IsInf(float64(c), -1):
				v[i] = -1
			default:
				v[i] = 0
			}
		}
	}

	var sq float64
	for _, c := range v {
		sq += float64(c) * float64(c)
	}
	l := math.Sqrt(sq)
	if l <= float64(limit) {
		return
	}
	s := float32(float64(limit) / l)
	for i := range v {
		v[i] *= s
	}
}

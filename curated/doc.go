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

// Package curated is a helper package for errors that callers are expected to
// identify. Curated errors are created with Errorf(), which takes a formatting
// pattern and placeholder values in the same way as fmt.Errorf(). The pattern
// identifies the error:
//
//	const UnknownInput = "buttons: unknown %s input: %q"
//
//	err := curated.Errorf(UnknownInput, "keyboard", "foo")
//	if curated.Is(err, UnknownInput) {
//		...
//	}
//
// Has() checks whether the pattern occurs anywhere in the chain of curated
// errors:
//
//	f := curated.Errorf("bindingsfile: %v", err)
//	curated.Has(f, UnknownInput) // true
//	curated.Is(f, UnknownInput)  // false
//
// The Error() implementation normalises the message so that a chain does not
// contain duplicate adjacent parts. This means a package can add its own
// prefix without worrying about whether an inner error already carries the
// same prefix.
//
// Curated errors also support the Unwrap() convention so they work with
// errors.Is() and errors.As() from the standard library.
package curated

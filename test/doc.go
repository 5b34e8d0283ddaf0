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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are the same tests but stop the test
// with t.Fatalf(). Demand is useful when a value is going to be used in
// further tests and so must be correct. For example, testing that the length
// of a slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Currently supported types:
//
//	bool -> true is success
//	error -> nil is success
//
// It is worth describing how nil is handled because it is not obvious. The nil
// type is considered a success and consequently will cause ExpectFailure to
// fail and ExpectSuccess to succeed. This is because of how errors usually
// work (nil to indicate no error).
//
// All functions accept optional tags which are prefixed to any failure
// message. This is useful when a test is run inside a loop.
package test

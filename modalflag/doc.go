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

// Package modalflag wraps the flag package in the standard library so that a
// command can have modes, each with its own flags and arguments.
//
// Arguments are given once with NewArgs(). Each layer of the command line is
// then handled by adding flags and sub-modes and calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "CHECK")
//	statsview := md.AddBool("statsview", false, "run stats server")
//
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "CHECK":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags is not a sub-mode. Sub-modes are case insensitive and are
// always reported in upper case.
//
// A call to NewMode() starts a new layer. The arguments that remained after
// the previous Parse(), minus the mode selector, are the arguments for the new
// layer.
package modalflag

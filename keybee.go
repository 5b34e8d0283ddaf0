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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jetsetilly/keybee/bindingsfile"
	"github.com/jetsetilly/keybee/logger"
	"github.com/jetsetilly/keybee/modalflag"
	"github.com/jetsetilly/keybee/prefs"
	"github.com/jetsetilly/keybee/statsview"
	"github.com/jetsetilly/keybee/version"
)

// SDL requires that window and event handling happen on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. returns the exit status.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "CHECK", "CONVERT", "SDL", "VERSION")

	prefsFile := md.AddString("prefsfile", "", "preferences file (default in the user config directory)")
	prefsOverride := md.AddString("prefs", "", "override preferences. eg. \"keybee.fps::30; keybee.reload::false\"")
	echo := md.AddBool("log", false, "echo log to stderr")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	path := *prefsFile
	if path == "" {
		path, err = prefs.DefaultPath()
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return 10
		}
	}

	cfg, err := newConfig(path)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitor(md, cfg)
	case "CHECK":
		err = check(md, output)
	case "CONVERT":
		err = convert(md, output)
	case "SDL":
		err = sdlMonitor(md, cfg, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func check(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Decode a bindings file and list its actions.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one bindings file required")
	}

	tab, err := bindingsfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprint(output, tab.String())
	return nil
}

func convert(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Re-encode a bindings file. The formats are chosen by the file extensions.")
	force := md.AddBool("force", false, "overwrite an existing output file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("input and output files required")
	}
	in, out := md.GetArg(0), md.GetArg(1)

	if !*force {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%s already exists", out)
		}
	}

	tab, err := bindingsfile.Load(in)
	if err != nil {
		return err
	}

	err = bindingsfile.Save(out, tab)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d action sets\n", out, len(tab))
	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n", v, r)
	} else {
		fmt.Fprintln(output, v)
	}
	return nil
}

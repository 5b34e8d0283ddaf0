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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/bindingsfile"
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/prefs"
	"github.com/jetsetilly/keybee/session"
	"github.com/jetsetilly/keybee/test"
	"github.com/jetsetilly/keybee/userinput"
)

const bindingsYAML = `
player:
  jump:
    - button: keyboard/space
  move:
    - axis2d:
        x: {neg: keyboard/a, pos: keyboard/d}
        y: {neg: keyboard/s, pos: keyboard/w}
menu:
  zoom:
    - axis1d: {axis: mouse/wheely, sensitivity: 2}
  fly:
    - axis3d:
        x: {neg: keyboard/a, pos: keyboard/d}
        y: {axis: gamepad/lefttrigger}
        z: {neg: keyboard/s, pos: keyboard/w}
`

const bindingsList = "menu/fly: (keyboard/a/keyboard/d x1, gamepad/lefttrigger x1, keyboard/s/keyboard/w x1)\n" +
	"menu/zoom: mouse/wheely x2\n" +
	"player/jump: keyboard/space\n" +
	"player/move: (keyboard/a/keyboard/d x1, keyboard/s/keyboard/w x1)\n"

func loadTestBindings(t *testing.T) bindings.Table {
	t.Helper()
	tab, err := bindingsfile.Decode(strings.NewReader(bindingsYAML), bindingsfile.YAML)
	test.DemandSuccess(t, err)
	return tab
}

func writeTestBindings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	test.DemandSuccess(t, os.WriteFile(path, []byte(bindingsYAML), 0o644))
	return path
}

func TestBuildActions(t *testing.T) {
	tab := loadTestBindings(t)
	sess := session.NewSession()
	sess.UseBindings(tab)

	l := buildActions(sess, tab, nil)
	test.ExpectEquality(t, len(l.sets), 2)
	test.ExpectEquality(t, strings.Join(l.lines(), "\n"), "menu/fly: [0 0 0]\n"+
		"menu/zoom: 0\n"+
		"player/jump: false\n"+
		"player/move: [0 0]")

	sess.HandleEvent(userinput.ButtonPressed{Button: buttons.KeySpace.Button()})
	sess.HandleEvent(userinput.ButtonPressed{Button: buttons.KeyD.Button()})
	sess.HandleEvent(userinput.MouseWheel{X: 0, Y: 1})
	test.ExpectEquality(t, strings.Join(l.lines(), "\n"), "menu/fly: [1 0 0]\n"+
		"menu/zoom: 2\n"+
		"player/jump: true\n"+
		"player/move: [1 0]")

	// a rebuild reuses the existing action sets
	r := buildActions(sess, sess.Bindings(), l)
	test.ExpectEquality(t, len(r.sets), 2)
	test.ExpectEquality(t, r.sets["player"], l.sets["player"])
	test.ExpectEquality(t, len(r.actions), 4)
}

func TestChangedActions(t *testing.T) {
	tab := loadTestBindings(t)
	sess := session.NewSession()
	sess.UseBindings(tab)
	l := buildActions(sess, tab, nil)

	prev := make(map[string]string)
	test.ExpectEquality(t, len(l.changed(prev)), 4)
	test.ExpectEquality(t, len(l.changed(prev)), 0)

	sess.HandleEvent(userinput.ButtonPressed{Button: buttons.KeySpace.Button()})
	test.ExpectEquality(t, strings.Join(l.changed(prev), ","), "player/jump: true")

	sess.EndUpdate()
	test.ExpectEquality(t, len(l.changed(prev)), 0)
}

func TestReloadTarget(t *testing.T) {
	sess := session.NewSession()
	tgt := &reloadTarget{sess: sess, reloaded: make(chan struct{}, 1)}

	// a second reload before the first is noticed does not block
	tgt.ReplaceBindings(loadTestBindings(t))
	tgt.ReplaceBindings(loadTestBindings(t))

	<-tgt.reloaded
	test.ExpectEquality(t, sess.Bindings().String(), bindingsList)
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")

	cfg, err := newConfig(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.fps.Get().(int), defaultFPS)
	test.ExpectSuccess(t, cfg.reload.Get().(bool))

	_, err = cfg.bindingsPath("")
	test.ExpectFailure(t, err)

	p, err := cfg.bindingsPath("a.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, "a.yaml")

	test.ExpectFailure(t, cfg.fps.Set(0))
	test.ExpectSuccess(t, cfg.fps.Set(30))
	test.ExpectSuccess(t, cfg.bindings.Set("b.yaml"))
	test.DemandSuccess(t, cfg.save())

	cfg, err = newConfig(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.fps.Get().(int), 30)
	p, _ = cfg.bindingsPath("")
	test.ExpectEquality(t, p, "b.yaml")

	// command line overrides the file
	prefs.PushCommandLineStack("keybee.fps::15")
	defer prefs.PopCommandLineStack()
	cfg, err = newConfig(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.fps.Get().(int), 15)
}

func TestCheckMode(t *testing.T) {
	path := writeTestBindings(t)
	pf := filepath.Join(t.TempDir(), "preferences")

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-prefsfile", pf, "check", path}, &out), 0)
	test.ExpectEquality(t, out.String(), bindingsList)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"-prefsfile", pf, "check"}, &out), 20)
}

func TestConvertMode(t *testing.T) {
	path := writeTestBindings(t)
	pf := filepath.Join(t.TempDir(), "preferences")
	out := filepath.Join(t.TempDir(), "bindings.toml")

	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-prefsfile", pf, "convert", path, out}, &w), 0)

	tab, err := bindingsfile.Load(out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.String(), bindingsList)

	// output exists
	test.ExpectEquality(t, launch([]string{"-prefsfile", pf, "convert", path, out}, &w), 20)
	test.ExpectEquality(t, launch([]string{"-prefsfile", pf, "convert", "-force", path, out}, &w), 0)
}

func TestBadFlag(t *testing.T) {
	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &w), 10)
}

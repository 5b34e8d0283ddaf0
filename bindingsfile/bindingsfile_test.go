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

package bindingsfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/bindingsfile"
	"github.com/jetsetilly/keybee/buttons"
	"github.com/jetsetilly/keybee/curated"
	"github.com/jetsetilly/keybee/test"
)

const yamlDoc = `
player:
  jump:
    - button: keyboard/space
    - button: gamepad/a
  move:
    - axis2d:
        x: {neg: keyboard/a, pos: keyboard/d}
        y: {neg: keyboard/s, pos: keyboard/w}
    - axis2d: {axis: gamepad/leftstick, sensitivity: 0.5}
menu:
  zoom:
    - axis1d: {axis: mouse/wheely, sensitivity: 2}
  fly:
    - axis3d:
        x: {neg: keyboard/a, pos: keyboard/d}
        y: {axis: gamepad/lefttrigger}
        z: {neg: keyboard/s, pos: keyboard/w}
`

const tomlDoc = `
[player]
jump = [{ button = "keyboard/space" }, { button = "gamepad/a" }]
move = [
  { axis2d = { x = { neg = "keyboard/a", pos = "keyboard/d" }, y = { neg = "keyboard/s", pos = "keyboard/w" } } },
  { axis2d = { axis = "gamepad/leftstick", sensitivity = 0.5 } },
]

[menu]
zoom = [{ axis1d = { axis = "mouse/wheely", sensitivity = 2.0 } }]
fly = [{ axis3d = { x = { neg = "keyboard/a", pos = "keyboard/d" }, y = { axis = "gamepad/lefttrigger" }, z = { neg = "keyboard/s", pos = "keyboard/w" } } }]
`

const expected = "menu/fly: (keyboard/a/keyboard/d x1, gamepad/lefttrigger x1, keyboard/s/keyboard/w x1)\n" +
	"menu/zoom: mouse/wheely x2\n" +
	"player/jump: keyboard/space gamepad/a\n" +
	"player/move: (keyboard/a/keyboard/d x1, keyboard/s/keyboard/w x1) gamepad/leftstick x0.5\n"

func TestDecodeYAML(t *testing.T) {
	tab, err := bindingsfile.Decode(strings.NewReader(yamlDoc), bindingsfile.YAML)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.String(), expected)

	// check the types of some of the bindings
	test.ExpectEquality(t, tab["player"]["jump"][1], bindings.Binding(bindings.NewButton(buttons.GamepadA.Button())))
	_, ok := tab["player"]["move"][0].(bindings.IndividualAxis2D)
	test.ExpectSuccess(t, ok)
	_, ok = tab["menu"]["fly"][0].(bindings.IndividualAxis3D)
	test.ExpectSuccess(t, ok)
}

func TestDecodeTOML(t *testing.T) {
	tab, err := bindingsfile.Decode(strings.NewReader(tomlDoc), bindingsfile.TOML)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.String(), expected)
}

func TestDecodeEmpty(t *testing.T) {
	tab, err := bindingsfile.Decode(strings.NewReader(""), bindingsfile.YAML)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tab), 0)

	tab, err = bindingsfile.Decode(strings.NewReader(""), bindingsfile.TOML)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tab), 0)
}

func TestDecodeErrors(t *testing.T) {
	decode := func(doc string) error {
		tab, err := bindingsfile.Decode(strings.NewReader(doc), bindingsfile.YAML)
		if tab != nil {
			t.Errorf("partial table returned with error")
		}
		return err
	}

	err := decode("player:\n  jump:\n    - button: keyboard/space\n    - button: keyboard/nosuchkey\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.UnknownInput))
	test.ExpectSuccess(t, curated.Has(err, buttons.UnknownInput))

	err = decode("player:\n  jump:\n    - button: joystick/fire\n")
	test.ExpectSuccess(t, curated.Has(err, buttons.UnknownDevice))

	err = decode("player:\n  jump:\n    - {}\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.MalformedEntry))

	err = decode("player:\n  jump:\n    - button: keyboard/space\n      axis1d: {axis: mouse/x}\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.MalformedEntry))

	err = decode("player:\n  move:\n    - axis1d: {neg: keyboard/a, axis: mouse/x}\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.MalformedEntry))

	err = decode("player:\n  move:\n    - axis2d: {x: {axis: mouse/x}}\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.MalformedEntry))

	err = decode("player:\n  move:\n    - axis3d: {x: {axis: mouse/x}, y: {axis: mouse/y}}\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.MalformedEntry))

	err = decode("player:\n  jump:\n    - key: keyboard/space\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.SyntaxError))

	err = decode("player: [\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.SyntaxError))

	err = decode("a/b:\n  c:\n    - button: keyboard/space\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.IllegalSetName))

	// action names can contain the separator
	tab, err := bindingsfile.Decode(strings.NewReader("a:\n  b/c:\n    - button: keyboard/space\n"), bindingsfile.YAML)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab.String(), "a/b/c: keyboard/space\n")

	// anything after the first document fails the whole decode
	err = decode("player:\n  jump:\n    - button: keyboard/space\n---\nplayer:\n  jump:\n    - button: nosuch/thing\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.SyntaxError))

	err = decode("player:\n  jump:\n    - button: keyboard/space\n---\nmenu:\n  zoom:\n    - button: keyboard/z\n")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.SyntaxError))

	_, err = bindingsfile.Decode(strings.NewReader("[player\n"), bindingsfile.TOML)
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.SyntaxError))
}

func TestRoundTrip(t *testing.T) {
	tab, err := bindingsfile.Decode(strings.NewReader(yamlDoc), bindingsfile.YAML)
	test.DemandSuccess(t, err)

	for _, f := range []bindingsfile.Format{bindingsfile.YAML, bindingsfile.TOML} {
		var buf bytes.Buffer
		err := bindingsfile.Encode(&buf, tab, f)
		test.DemandSuccess(t, err)

		c, err := bindingsfile.Decode(&buf, f)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, c.String(), expected, f)
	}
}

func TestDefaultSensitivityOmitted(t *testing.T) {
	tab := bindings.Table{
		"player": {"steer": {bindings.NewDeviceAxis1D(buttons.GamepadLeftStickX.Axis())}},
	}
	var buf bytes.Buffer
	err := bindingsfile.Encode(&buf, tab, bindingsfile.YAML)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(buf.String(), "sensitivity"))
}

func TestSaveAndLoad(t *testing.T) {
	tab, err := bindingsfile.Decode(strings.NewReader(yamlDoc), bindingsfile.YAML)
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	for _, name := range []string{"bindings.yaml", "bindings.yml", "bindings.toml"} {
		path := filepath.Join(dir, name)
		test.DemandSuccess(t, bindingsfile.Save(path, tab))

		c, err := bindingsfile.Load(path)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, c.String(), expected, name)
	}

	err = bindingsfile.Save(filepath.Join(dir, "bindings.json"), tab)
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.UnknownFormat))

	_, err = bindingsfile.Load(filepath.Join(dir, "missing.yaml"))
	test.ExpectFailure(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := bindingsfile.FormatFromPath("keys.YAML")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, bindingsfile.YAML)

	f, err = bindingsfile.FormatFromPath("/etc/keybee/keys.toml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, bindingsfile.TOML)

	_, err = bindingsfile.FormatFromPath("keys")
	test.ExpectSuccess(t, curated.Is(err, bindingsfile.UnknownFormat))
}

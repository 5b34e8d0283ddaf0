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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/keybee/curated"
)

// Error patterns. Use with curated.Is() or curated.Has().
const (
	UnknownFormat  = "bindingsfile: unknown format: %s"
	SyntaxError    = "bindingsfile: %s: %w"
	MalformedEntry = "bindingsfile: %s[%d]: %s"
	UnknownInput   = "bindingsfile: %s[%d]: %w"
	IllegalSetName = "bindingsfile: %s: set name cannot contain %q"
)

// Format is the encoding of the bindings document.
type Format int

// List of valid Format values.
const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("format%d", int(f))
}

// FormatFromPath chooses the Format from the extension of the filename.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, curated.Errorf(UnknownFormat, path)
}

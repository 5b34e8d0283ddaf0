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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/keybee/bindings"
	"github.com/jetsetilly/keybee/curated"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode reads a bindings document from the reader. Unknown keys are an
// error. An empty document is an empty table.
func Decode(r io.Reader, f Format) (bindings.Table, error) {
	var doc document

	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, curated.Errorf(SyntaxError, f, err)
			}
			break
		}

		// a bindings file is a single document
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("more than one document")
			}
			return nil, curated.Errorf(SyntaxError, f, err)
		}
	case TOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, curated.Errorf(SyntaxError, f, err)
		}
	default:
		return nil, curated.Errorf(UnknownFormat, f)
	}

	return toTable(doc)
}

// Encode writes the table to the writer. Sensitivity is omitted when it is
// one.
func Encode(w io.Writer, tab bindings.Table, f Format) error {
	doc := fromTable(tab)

	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("bindingsfile: %w", err)
		}
		return enc.Close()
	case TOML:
		enc := toml.NewEncoder(w).SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("bindingsfile: %w", err)
		}
		return nil
	}

	return curated.Errorf(UnknownFormat, f)
}

// Load reads the bindings file at path. The format is chosen from the file
// extension.
func Load(path string) (bindings.Table, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bindingsfile: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}

// Save writes the table to the file at path, replacing any existing file. The
// format is chosen from the file extension.
func Save(path string, tab bindings.Table) (rerr error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bindingsfile: %w", err)
	}
	defer func() {
		if err := fh.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("bindingsfile: %w", err)
		}
	}()

	return Encode(fh, tab, f)
}

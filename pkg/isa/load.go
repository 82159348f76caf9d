// Copyright (C) 2025  Makon324

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package isa

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultFilename = "instructions.json"

// Find searches for filename in start and every parent directory up to the
// filesystem root, returning the first match.
func Find(start string, filename string) (string, error) {
	dir, err := filepath.Abs(start)

	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)

		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf(
		"instruction file %q not found searching upward from %q",
		filename,
		start,
	)
}

// Load reads and decodes an instruction catalog file, then validates it with
// BuildCatalog. Read and decode failures are reported before any catalog
// validation begins.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("unable to read %q: %w", path, err)
	}

	var raw []RawSpec

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in %q: %w", path, err)
	}

	return BuildCatalog(raw)
}

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

// Package assembler translates M-PU-3 assembly source into fixed-width
// 16-bit machine code words, driven by a declarative instruction catalog.
//
// The pipeline runs in four synchronous stages: Tokenize produces positioned
// tokens, Parse groups them into statements, a Validator checks statements
// against the catalog, and a Generator performs two-pass assembly with label
// resolution. Each stage fails fast with a single typed error carrying the
// fault's source position.
package assembler

import (
	"github.com/Makon324/M-PU-3/pkg/isa"
)

// Assemble runs the full pipeline over one source text and returns one
// 16-character binary string per instruction, in source order.
func Assemble(source string, catalog isa.Catalog) ([]string, error) {
	tokens, err := Tokenize(source)

	if err != nil {
		return nil, err
	}

	program, err := Parse(tokens)

	if err != nil {
		return nil, err
	}

	if err := NewValidator(catalog).Validate(program); err != nil {
		return nil, err
	}

	return NewGenerator(catalog).Generate(program)
}

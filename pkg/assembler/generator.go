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

package assembler

import (
	"github.com/Makon324/M-PU-3/pkg/encoding"
	"github.com/Makon324/M-PU-3/pkg/isa"
)

// Generator performs two-pass assembly: the first pass assigns every label
// its 0-based instruction address, the second renders each instruction's
// code template with its encoded operand fields.
type Generator struct {
	catalog isa.Catalog
}

func NewGenerator(catalog isa.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate produces one 16-character binary word per instruction statement,
// in source order. Label statements contribute no output word.
func (g *Generator) Generate(program []Statement) ([]string, error) {
	symbols, err := g.resolveLabels(program)

	if err != nil {
		return nil, err
	}

	machineCode := make([]string, 0, len(program))

	for i := range program {
		if program[i].Type != STATEMENT_INSTRUCTION {
			continue
		}

		word, err := g.generateInstruction(&program[i], symbols)

		if err != nil {
			return nil, err
		}

		machineCode = append(machineCode, word)
	}

	return machineCode, nil
}

// Symbols exposes the first-pass symbol table, mapping each label to the
// address of the instruction that follows it.
func (g *Generator) Symbols(program []Statement) (map[string]int, error) {
	return g.resolveLabels(program)
}

func (g *Generator) resolveLabels(program []Statement) (map[string]int, error) {
	symbols := make(map[string]int)

	address := 0

	for i := range program {
		statement := &program[i]

		switch statement.Type {
		case STATEMENT_LABEL:
			if _, exists := symbols[statement.Name]; exists {
				return nil, &DuplicateLabelError{
					statement.Position, statement.Name,
				}
			}

			symbols[statement.Name] = address

		case STATEMENT_INSTRUCTION:
			address++

			if address > MaxProgramSize {
				return nil, &ProgramTooLongError{
					statement.Position, address,
				}
			}
		}
	}

	return symbols, nil
}

func (g *Generator) generateInstruction(
	statement *Statement, symbols map[string]int,
) (string, error) {
	spec, ok := g.catalog.Lookup(statement.Mnemonic)

	if !ok {
		return "", &InvalidInstructionError{
			statement.Position, statement.Mnemonic,
		}
	}

	word := []byte(spec.Template)

	for i := range spec.Operands {
		if i >= len(statement.Operands) {
			break
		}

		operand := &spec.Operands[i]
		token := &statement.Operands[i]

		var value int

		switch operand.Type {
		case isa.OPERAND_REG:
			value, _ = encoding.DecodeRegister(token.Value)

		case isa.OPERAND_NUM:
			value, _ = encoding.DecodeNumber(token.Value)

			for _, transformation := range operand.Transformations {
				value = transformation.Apply(value)
			}

		case isa.OPERAND_ADR:
			if token.Type == TOKEN_IDENT {
				address, exists := symbols[token.Value]

				if !exists {
					return "", &UndefinedLabelError{
						token.Position, token.Value,
					}
				}

				value = address
			} else {
				value, _ = encoding.DecodeNumber(token.Value)
			}
		}

		field := spec.Fields[i]

		copy(
			word[field.Pos:field.Pos+field.Width],
			encoding.FieldBits(value, field.Width),
		)
	}

	return string(word), nil
}

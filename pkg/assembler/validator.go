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
	"fmt"

	"github.com/Makon324/M-PU-3/pkg/encoding"
	"github.com/Makon324/M-PU-3/pkg/isa"
)

// Validator checks instruction statements against the instruction catalog.
// Label statements are structurally always valid here; label uniqueness is
// the code generator's concern.
type Validator struct {
	catalog isa.Catalog
}

func NewValidator(catalog isa.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate scans statements in source order and fails on the first
// violation.
func (v *Validator) Validate(program []Statement) error {
	for i := range program {
		if program[i].Type != STATEMENT_INSTRUCTION {
			continue
		}

		if err := v.validateInstruction(&program[i]); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateInstruction(statement *Statement) error {
	spec, ok := v.catalog.Lookup(statement.Mnemonic)

	if !ok {
		return &InvalidInstructionError{
			statement.Position, statement.Mnemonic,
		}
	}

	if len(statement.Operands) != len(spec.Operands) {
		return &InvalidSyntaxError{
			statement.Position,
			fmt.Sprintf(
				"wrong number of operands for %s, want %d, have %d",
				spec.Mnemonic,
				len(spec.Operands),
				len(statement.Operands),
			),
		}
	}

	for i := range statement.Operands {
		err := validateOperand(&statement.Operands[i], &spec.Operands[i])

		if err != nil {
			return err
		}
	}

	return nil
}

func validateOperand(token *Token, spec *isa.Operand) error {
	switch spec.Type {
	case isa.OPERAND_REG:
		return validateRegisterOperand(token)
	case isa.OPERAND_NUM:
		return validateNumberOperand(token, spec)
	case isa.OPERAND_ADR:
		return validateAddressOperand(token)
	}

	return nil
}

func validateRegisterOperand(token *Token) error {
	if token.Type != TOKEN_REGISTER {
		return &InvalidOperandError{
			token.Position,
			[]TokenType{TOKEN_REGISTER},
			token.Type,
		}
	}

	register, err := encoding.DecodeRegister(token.Value)

	if err != nil {
		return &InvalidRegisterError{
			Position: token.Position, Text: token.Value,
		}
	}

	if register > NumRegisters-1 {
		return &InvalidRegisterError{
			Position: token.Position, Received: register,
		}
	}

	return nil
}

func validateNumberOperand(token *Token, spec *isa.Operand) error {
	if !isNumberToken(token.Type) {
		return &InvalidOperandError{
			token.Position,
			[]TokenType{TOKEN_HEX, TOKEN_BIN, TOKEN_DEC},
			token.Type,
		}
	}

	// Range applies to the written value; transformations are an encoding
	// detail applied later by the code generator.
	number, err := encoding.DecodeNumber(token.Value)

	if err != nil {
		return &ValueOutOfRangeError{
			Position: token.Position,
			Min:      spec.Min,
			Max:      spec.Max,
			Text:     token.Value,
		}
	}

	if number < spec.Min || number > spec.Max {
		return &ValueOutOfRangeError{
			Position: token.Position,
			Min:      spec.Min,
			Max:      spec.Max,
			Received: number,
		}
	}

	return nil
}

func validateAddressOperand(token *Token) error {
	if token.Type == TOKEN_IDENT {
		// Label existence is resolved during code generation; labels may
		// be defined later in the source.
		return nil
	}

	if !isNumberToken(token.Type) {
		return &InvalidOperandError{
			token.Position,
			[]TokenType{TOKEN_IDENT, TOKEN_HEX, TOKEN_BIN, TOKEN_DEC},
			token.Type,
		}
	}

	address, err := encoding.DecodeNumber(token.Value)

	if err != nil {
		return &InvalidAddressError{
			Position: token.Position, Text: token.Value,
		}
	}

	if address < 0 || address > MaxProgramSize-1 {
		return &InvalidAddressError{
			Position: token.Position, Received: address,
		}
	}

	return nil
}

func isNumberToken(t TokenType) bool {
	switch t {
	case TOKEN_HEX, TOKEN_BIN, TOKEN_DEC:
		return true
	}

	return false
}

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

package assembler_test

import (
	"reflect"
	"testing"

	"github.com/Makon324/M-PU-3/pkg/assembler"
)

func makeToken(
	kind assembler.TokenType, value string, line, column int,
) assembler.Token {
	return assembler.Token{
		Type:     kind,
		Value:    value,
		Position: assembler.Cursor{Line: line, Column: column},
	}
}

func TestParseLabelAndInstruction(t *testing.T) {
	tokens := []assembler.Token{
		makeToken(assembler.TOKEN_LABEL, ".start:", 1, 1),
		makeToken(assembler.TOKEN_MNEMONIC, "MOV", 2, 1),
		makeToken(assembler.TOKEN_REGISTER, "R1", 2, 5),
		makeToken(assembler.TOKEN_DEC, "5", 2, 9),
	}

	statements, err := assembler.Parse(tokens)

	if err != nil {
		t.Fatal(err)
	}

	if len(statements) != 2 {
		t.Fatalf("Invalid statement count\nwant:2\nhave:%d", len(statements))
	}

	if statements[0].Type != assembler.STATEMENT_LABEL {
		t.Fatalf(
			"Statement type mismatch\nwant:%d\nhave:%d",
			assembler.STATEMENT_LABEL,
			statements[0].Type,
		)
	}

	if statements[0].Name != ".start" {
		t.Fatalf(
			"Label name mismatch\nwant:.start\nhave:%s", statements[0].Name,
		)
	}

	if statements[1].Type != assembler.STATEMENT_INSTRUCTION {
		t.Fatalf(
			"Statement type mismatch\nwant:%d\nhave:%d",
			assembler.STATEMENT_INSTRUCTION,
			statements[1].Type,
		)
	}

	if statements[1].Mnemonic != "MOV" {
		t.Fatalf(
			"Mnemonic mismatch\nwant:MOV\nhave:%s", statements[1].Mnemonic,
		)
	}

	operands := []assembler.Token{tokens[2], tokens[3]}

	if !reflect.DeepEqual(statements[1].Operands, operands) {
		t.Fatalf(
			"Operand mismatch\nwant:%+v\nhave:%+v",
			operands,
			statements[1].Operands,
		)
	}
}

// Operand collection stops at the line boundary; the mnemonic on the next
// line must start its own statement instead of being swallowed as an
// operand.
func TestParseOperandsEndAtLine(t *testing.T) {
	tokens := []assembler.Token{
		makeToken(assembler.TOKEN_MNEMONIC, "MOV", 1, 1),
		makeToken(assembler.TOKEN_REGISTER, "R1", 1, 5),
		makeToken(assembler.TOKEN_DEC, "5", 1, 9),
		makeToken(assembler.TOKEN_MNEMONIC, "NOP", 2, 1),
	}

	statements, err := assembler.Parse(tokens)

	if err != nil {
		t.Fatal(err)
	}

	if len(statements) != 2 {
		t.Fatalf("Invalid statement count\nwant:2\nhave:%d", len(statements))
	}

	if count := len(statements[0].Operands); count != 2 {
		t.Fatalf("Invalid operand count\nwant:2\nhave:%d", count)
	}

	if statements[1].Mnemonic != "NOP" {
		t.Fatalf(
			"Mnemonic mismatch\nwant:NOP\nhave:%s", statements[1].Mnemonic,
		)
	}

	if len(statements[1].Operands) != 0 {
		t.Fatalf(
			"Unexpected operands\nwant:0\nhave:%d",
			len(statements[1].Operands),
		)
	}
}

func TestParseIdentOperand(t *testing.T) {
	tokens := []assembler.Token{
		makeToken(assembler.TOKEN_MNEMONIC, "JMP", 1, 1),
		makeToken(assembler.TOKEN_IDENT, ".loop", 1, 5),
	}

	statements, err := assembler.Parse(tokens)

	if err != nil {
		t.Fatal(err)
	}

	if len(statements) != 1 {
		t.Fatalf("Invalid statement count\nwant:1\nhave:%d", len(statements))
	}

	if statements[0].Operands[0].Value != ".loop" {
		t.Fatalf(
			"Operand mismatch\nwant:.loop\nhave:%s",
			statements[0].Operands[0].Value,
		)
	}
}

func TestParseFail(t *testing.T) {
	tests := []struct {
		Name   string
		Tokens []assembler.Token
	}{
		{
			Name: "OperandWithoutMnemonic",
			Tokens: []assembler.Token{
				makeToken(assembler.TOKEN_REGISTER, "R1", 1, 1),
			},
		},
		{
			Name: "IdentAtTopLevel",
			Tokens: []assembler.Token{
				makeToken(assembler.TOKEN_IDENT, ".loop", 1, 1),
			},
		},
		{
			Name: "LabelAfterMnemonic",
			Tokens: []assembler.Token{
				makeToken(assembler.TOKEN_MNEMONIC, "MOV", 1, 1),
				makeToken(assembler.TOKEN_LABEL, ".here:", 1, 5),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := assembler.Parse(test.Tokens)

			if _, ok := err.(*assembler.InvalidSyntaxError); !ok {
				t.Fatalf(
					"Error of incorrect type\nwant:%T\nhave:%T",
					&assembler.InvalidSyntaxError{},
					err,
				)
			}
		})
	}
}

// A label sharing a line with the following instruction parses the same as
// a label on its own line.
func TestParseLabelSameLine(t *testing.T) {
	tokens := []assembler.Token{
		makeToken(assembler.TOKEN_LABEL, ".loop:", 1, 1),
		makeToken(assembler.TOKEN_MNEMONIC, "NOP", 1, 8),
	}

	statements, err := assembler.Parse(tokens)

	if err != nil {
		t.Fatal(err)
	}

	if len(statements) != 2 {
		t.Fatalf("Invalid statement count\nwant:2\nhave:%d", len(statements))
	}

	if statements[0].Name != ".loop" {
		t.Fatalf(
			"Label name mismatch\nwant:.loop\nhave:%s", statements[0].Name,
		)
	}
}

func TestParseEmpty(t *testing.T) {
	statements, err := assembler.Parse(nil)

	if err != nil {
		t.Fatal(err)
	}

	if len(statements) != 0 {
		t.Fatalf("Invalid statement count\nwant:0\nhave:%d", len(statements))
	}
}

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

func TestAssemble(t *testing.T) {
	source := ".start:\n" +
		"MOV R1, 5\n" +
		".loop:\n" +
		"ADD R1, R2\n" +
		"JMP .loop\n"

	words, err := assembler.Assemble(source, mockCatalog(t))

	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"0000100100000101",
		"0001100101000000",
		"0001000000000001",
	}

	if !reflect.DeepEqual(words, expected) {
		t.Fatalf("Machine code mismatch\nwant:%v\nhave:%v", expected, words)
	}
}

// A decimal literal with a leading zero is still decimal; only an explicit
// 0x or 0b prefix changes the radix.
func TestAssembleLeadingZeroDecimal(t *testing.T) {
	words, err := assembler.Assemble("MOV R1, 010\n", mockCatalog(t))

	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"0000100100001010"}

	if !reflect.DeepEqual(words, expected) {
		t.Fatalf("Machine code mismatch\nwant:%v\nhave:%v", expected, words)
	}
}

func TestAssembleEmptySource(t *testing.T) {
	words, err := assembler.Assemble("; nothing here\n\n", mockCatalog(t))

	if err != nil {
		t.Fatal(err)
	}

	if len(words) != 0 {
		t.Fatalf("Invalid word count\nwant:0\nhave:%d", len(words))
	}
}

// Validation runs on the whole program before any label resolution, so a
// range violation is reported even when a later statement also references
// an undefined label.
func TestAssembleValidationPrecedesResolution(t *testing.T) {
	source := "MOV R1, 300\n" +
		"JMP .nowhere\n"

	_, err := assembler.Assemble(source, mockCatalog(t))

	if _, ok := err.(*assembler.ValueOutOfRangeError); !ok {
		t.Fatalf(
			"Error of incorrect type\nwant:%T\nhave:%T",
			&assembler.ValueOutOfRangeError{},
			err,
		)
	}
}

func TestAssembleFail(t *testing.T) {
	tests := []struct {
		Name   string
		Source string
		Error  error
	}{
		{
			Name:   "UnexpectedChar",
			Source: "MOV R1, #5\n",
			Error:  &assembler.UnexpectedCharError{},
		},
		{
			Name:   "StrayOperand",
			Source: "R1\n",
			Error:  &assembler.InvalidSyntaxError{},
		},
		{
			Name:   "UnknownMnemonic",
			Source: "FOO R1\n",
			Error:  &assembler.InvalidInstructionError{},
		},
		{
			Name:   "MissingOperand",
			Source: "MOV R1\n",
			Error:  &assembler.InvalidSyntaxError{},
		},
		{
			Name:   "RegisterOutOfRange",
			Source: "MOV R9, 5\n",
			Error:  &assembler.InvalidRegisterError{},
		},
		{
			Name:   "ValueOutOfRange",
			Source: "MOV R1, 999\n",
			Error:  &assembler.ValueOutOfRangeError{},
		},
		{
			Name:   "AddressOutOfRange",
			Source: "JMP 5000\n",
			Error:  &assembler.InvalidAddressError{},
		},
		{
			Name:   "DuplicateLabel",
			Source: ".loop:\nNOP\n.loop:\nNOP\n",
			Error:  &assembler.DuplicateLabelError{},
		},
		{
			Name:   "UndefinedLabel",
			Source: "JMP .missing\n",
			Error:  &assembler.UndefinedLabelError{},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := assembler.Assemble(test.Source, mockCatalog(t))

			if err == nil {
				t.Fatal("Expected assembly error, have <nil>")
			}

			if reflect.TypeOf(err) != reflect.TypeOf(test.Error) {
				t.Fatalf(
					"Error of incorrect type\nwant:%T\nhave:%T",
					test.Error,
					err,
				)
			}
		})
	}
}

// Every assembly error carries a source position for diagnostics.
func TestAssembleErrorPosition(t *testing.T) {
	source := "NOP\n" +
		"MOV R1, 999\n"

	_, err := assembler.Assemble(source, mockCatalog(t))

	posErr, ok := err.(assembler.TokenError)

	if !ok {
		t.Fatalf("Error does not carry a position: %T", err)
	}

	position := posErr.GetPosition()

	if position.Line != 2 || position.Column != 9 {
		t.Fatalf(
			"Position mismatch\nwant:02:09\nhave:%02d:%02d",
			position.Line,
			position.Column,
		)
	}
}

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
	"strconv"
	"strings"
)

type TokenType uint
type StatementType uint

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

type Token struct {
	Type     TokenType
	Position Cursor
	Value    string
}

type Statement struct {
	Type     StatementType
	Name     string
	Mnemonic string
	Operands []Token
	Position Cursor
}

func (t TokenType) String() string {
	switch t {
	case TOKEN_LABEL:
		return "Label"
	case TOKEN_IDENT:
		return "Identifier"
	case TOKEN_REGISTER:
		return "Register"
	case TOKEN_HEX:
		return "Hex"
	case TOKEN_BIN:
		return "Binary"
	case TOKEN_DEC:
		return "Decimal"
	case TOKEN_MNEMONIC:
		return "Mnemonic"
	case TOKEN_COMMENT:
		return "Comment"
	case TOKEN_NEWLINE:
		return "Newline"
	}

	return "<invalid>"
}

type TokenError interface {
	GetPosition() Cursor
}

type UnexpectedCharError struct {
	Position Cursor
	Received rune
}

func (err *UnexpectedCharError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedCharError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected character %q",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidSyntaxError struct {
	Position Cursor
	Message  string
}

func (err *InvalidSyntaxError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidSyntaxError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid syntax: %s",
		err.Position.Line,
		err.Position.Column,
		err.Message,
	)
}

type InvalidInstructionError struct {
	Position Cursor
	Mnemonic string
}

func (err *InvalidInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Mnemonic,
	)
}

type InvalidOperandError struct {
	Position Cursor
	Required []TokenType
	Received TokenType
}

func (err *InvalidOperandError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidOperandError) Error() string {
	var required string

	requiredStrings := make([]string, 0, len(err.Required))

	for _, tokenType := range err.Required {
		requiredStrings = append(requiredStrings, tokenType.String())
	}

	if count := len(requiredStrings); count == 1 {
		required = requiredStrings[0]
	} else if count == 2 {
		required = requiredStrings[0] + " or " + requiredStrings[1]
	} else if count > 2 {
		required = strings.Join(
			requiredStrings[:len(requiredStrings)-1], ", ",
		) + ", or " + requiredStrings[len(requiredStrings)-1]
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid operand\n\twant:%s\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		required,
		err.Received,
	)
}

// InvalidRegisterError reports a register outside the machine's register
// file. Text holds the raw token when the number could not be decoded at
// all, for literals too large to represent.
type InvalidRegisterError struct {
	Position Cursor
	Received int
	Text     string
}

func (err *InvalidRegisterError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidRegisterError) Error() string {
	received := err.Text

	if received == "" {
		received = strconv.Itoa(err.Received)
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid register number %s, must be between 0 and %d",
		err.Position.Line,
		err.Position.Column,
		received,
		NumRegisters-1,
	)
}

type ValueOutOfRangeError struct {
	Position Cursor
	Min      int
	Max      int
	Received int
	Text     string
}

func (err *ValueOutOfRangeError) GetPosition() Cursor {
	return err.Position
}

func (err *ValueOutOfRangeError) Error() string {
	received := err.Text

	if received == "" {
		received = strconv.Itoa(err.Received)
	}

	return fmt.Sprintf(
		"%02d:%02d: Value %s is out of range, expected %d to %d",
		err.Position.Line,
		err.Position.Column,
		received,
		err.Min,
		err.Max,
	)
}

type InvalidAddressError struct {
	Position Cursor
	Received int
	Text     string
}

func (err *InvalidAddressError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidAddressError) Error() string {
	received := err.Text

	if received == "" {
		received = strconv.Itoa(err.Received)
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid address %s, must be between 0 and %d",
		err.Position.Line,
		err.Position.Column,
		received,
		MaxProgramSize-1,
	)
}

type DuplicateLabelError struct {
	Position Cursor
	Label    string
}

func (err *DuplicateLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *DuplicateLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Label,
	)
}

type UndefinedLabelError struct {
	Position Cursor
	Label    string
}

func (err *UndefinedLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *UndefinedLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Undefined label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Label,
	)
}

type ProgramTooLongError struct {
	Position Cursor
	Count    int
}

func (err *ProgramTooLongError) GetPosition() Cursor {
	return err.Position
}

func (err *ProgramTooLongError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Program exceeds maximum size of %d instructions (current: %d)",
		err.Position.Line,
		err.Position.Column,
		MaxProgramSize,
		err.Count,
	)
}

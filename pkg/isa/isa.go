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
	"bytes"
	"fmt"
	"strings"
)

type OperandType uint
type Transformation uint

const (
	OPERAND_REG OperandType = iota
	OPERAND_NUM
	OPERAND_ADR
)

const (
	TRANSFORM_NEQ Transformation = iota
	TRANSFORM_DIV2
	TRANSFORM_DEC
)

// Each instruction word is a fixed 16-character pattern mixing literal bits
// and placeholder runs.
const TemplateLength = 16

// Placeholder returns the template letter that begins an operand's field run.
func (t OperandType) Placeholder() byte {
	switch t {
	case OPERAND_REG:
		return 'R'
	case OPERAND_NUM:
		return 'N'
	case OPERAND_ADR:
		return 'A'
	}

	return 0
}

// Apply performs a declared numeric adjustment on an immediate operand.
// Transformations compose left to right over an operand's declared list.
func (t Transformation) Apply(n int) int {
	switch t {
	case TRANSFORM_NEQ:
		if n == 0 {
			return 1
		}
		return 0

	case TRANSFORM_DIV2:
		// Floor division, not truncation
		if n < 0 && n%2 != 0 {
			return n/2 - 1
		}
		return n / 2

	case TRANSFORM_DEC:
		return n - 1
	}

	return n
}

type Operand struct {
	Type            OperandType
	Min             int
	Max             int
	Transformations []Transformation
}

// Field locates an operand's placeholder run inside a code template.
type Field struct {
	Pos   int
	Width int
}

type Spec struct {
	Mnemonic string
	Operands []Operand
	Fields   []Field
	Template string
}

// Catalog maps upper-cased mnemonics to their instruction specifications.
// It is built once per assembly run and never written afterwards.
type Catalog map[string]*Spec

// Lookup finds the specification for a mnemonic, case-insensitively.
func (c Catalog) Lookup(mnemonic string) (*Spec, bool) {
	spec, ok := c[strings.ToUpper(mnemonic)]
	return spec, ok
}

// RawOperand and RawSpec mirror one decoded catalog entry before validation.
type RawOperand struct {
	Type            string   `json:"type"`
	Range           []int    `json:"range,omitempty"`
	Transformations []string `json:"transformations,omitempty"`
	Description     string   `json:"description,omitempty"`
}

type RawSpec struct {
	Mnemonic     string       `json:"mnemonic"`
	Description  string       `json:"description,omitempty"`
	Operands     []RawOperand `json:"operands"`
	CodeTemplate string       `json:"code_template"`
}

type FormatError struct {
	Index    int
	Mnemonic string
	Message  string
}

func (err *FormatError) Error() string {
	if err.Mnemonic != "" {
		return fmt.Sprintf(
			"instruction %d (%s): %s", err.Index, err.Mnemonic, err.Message,
		)
	}

	return fmt.Sprintf("instruction %d: %s", err.Index, err.Message)
}

func buildOperand(index int, mnemonic string, raw *RawOperand) (Operand, error) {
	var operand Operand

	switch raw.Type {
	case "reg":
		operand.Type = OPERAND_REG

	case "num":
		operand.Type = OPERAND_NUM

		if len(raw.Range) != 2 {
			return operand, &FormatError{
				index, mnemonic, "num operand requires a 2-element range",
			}
		}

		operand.Min = raw.Range[0]
		operand.Max = raw.Range[1]

		if operand.Min > operand.Max {
			return operand, &FormatError{
				index,
				mnemonic,
				fmt.Sprintf(
					"invalid range [%d, %d]", operand.Min, operand.Max,
				),
			}
		}

		for _, name := range raw.Transformations {
			switch name {
			case "neq":
				operand.Transformations = append(
					operand.Transformations, TRANSFORM_NEQ,
				)
			case "div2":
				operand.Transformations = append(
					operand.Transformations, TRANSFORM_DIV2,
				)
			case "dec":
				operand.Transformations = append(
					operand.Transformations, TRANSFORM_DEC,
				)
			default:
				return operand, &FormatError{
					index,
					mnemonic,
					fmt.Sprintf("unknown transformation %q", name),
				}
			}
		}

	case "adr":
		operand.Type = OPERAND_ADR

	default:
		return operand, &FormatError{
			index,
			mnemonic,
			fmt.Sprintf("unknown operand type %q", raw.Type),
		}
	}

	return operand, nil
}

func buildFields(index int, spec *Spec) error {
	consumed := []byte(spec.Template)

	for i, operand := range spec.Operands {
		letter := operand.Type.Placeholder()

		pos := bytes.IndexByte(consumed, letter)

		if pos < 0 {
			return &FormatError{
				index,
				spec.Mnemonic,
				fmt.Sprintf(
					"no %c placeholder run for operand %d", letter, i,
				),
			}
		}

		width := 1
		for pos+width < len(consumed) && consumed[pos+width] == '_' {
			width++
		}

		spec.Fields = append(spec.Fields, Field{Pos: pos, Width: width})

		for j := pos; j < pos+width; j++ {
			consumed[j] = '0'
		}
	}

	for i := 0; i < len(consumed); i++ {
		if consumed[i] != '0' && consumed[i] != '1' {
			return &FormatError{
				index,
				spec.Mnemonic,
				fmt.Sprintf(
					"unresolved template character %q at position %d",
					consumed[i],
					i,
				),
			}
		}
	}

	return nil
}

// BuildCatalog validates decoded catalog entries and produces the immutable
// mnemonic lookup shared by the validator and the code generator. Validation
// stops at the first offending entry.
func BuildCatalog(raw []RawSpec) (Catalog, error) {
	catalog := make(Catalog, len(raw))

	for index, entry := range raw {
		if entry.Mnemonic == "" {
			return nil, &FormatError{index, "", "missing or empty mnemonic"}
		}

		key := strings.ToUpper(entry.Mnemonic)

		if _, exists := catalog[key]; exists {
			return nil, &FormatError{
				index, entry.Mnemonic, "duplicate mnemonic",
			}
		}

		// A zero-operand instruction must still declare an empty list; an
		// absent operands key decodes as nil.
		if entry.Operands == nil {
			return nil, &FormatError{
				index, entry.Mnemonic, "missing operands list",
			}
		}

		spec := &Spec{
			Mnemonic: entry.Mnemonic,
			Template: entry.CodeTemplate,
		}

		for _, rawOperand := range entry.Operands {
			operand, err := buildOperand(index, entry.Mnemonic, &rawOperand)

			if err != nil {
				return nil, err
			}

			spec.Operands = append(spec.Operands, operand)
		}

		if len(spec.Template) != TemplateLength {
			return nil, &FormatError{
				index,
				entry.Mnemonic,
				fmt.Sprintf(
					"code template must be %d characters, have %d",
					TemplateLength,
					len(spec.Template),
				),
			}
		}

		if err := buildFields(index, spec); err != nil {
			return nil, err
		}

		catalog[key] = spec
	}

	return catalog, nil
}

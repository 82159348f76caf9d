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
	"strings"
)

func isOperandToken(t TokenType) bool {
	switch t {
	case TOKEN_REGISTER, TOKEN_DEC, TOKEN_HEX, TOKEN_BIN, TOKEN_IDENT:
		return true
	}

	return false
}

// Parse groups tokens into program statements. A label token yields a Label
// statement; a mnemonic token starts an Instruction statement that collects
// every operand token remaining on its source line. A token on a new line
// ends operand collection without being consumed.
func Parse(tokens []Token) ([]Statement, error) {
	statements := make([]Statement, 0, len(tokens)/2)

	pos := 0

	for pos < len(tokens) {
		token := tokens[pos]

		switch token.Type {
		case TOKEN_LABEL:
			statements = append(statements, Statement{
				Type:     STATEMENT_LABEL,
				Name:     strings.TrimSuffix(token.Value, ":"),
				Position: token.Position,
			})
			pos++

		case TOKEN_MNEMONIC:
			statement := Statement{
				Type:     STATEMENT_INSTRUCTION,
				Mnemonic: token.Value,
				Position: token.Position,
			}
			pos++

			for pos < len(tokens) {
				operand := tokens[pos]

				if operand.Position.Line != token.Position.Line {
					break
				}

				if !isOperandToken(operand.Type) {
					return nil, &InvalidSyntaxError{
						operand.Position,
						fmt.Sprintf(
							"unexpected %s token %q",
							operand.Type,
							operand.Value,
						),
					}
				}

				statement.Operands = append(statement.Operands, operand)
				pos++
			}

			statements = append(statements, statement)

		default:
			return nil, &InvalidSyntaxError{
				token.Position,
				fmt.Sprintf(
					"unexpected %s token %q", token.Type, token.Value,
				),
			}
		}
	}

	return statements, nil
}

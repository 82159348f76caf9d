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

const (
	TOKEN_NONE TokenType = iota
	TOKEN_COMMENT
	TOKEN_LABEL
	TOKEN_IDENT
	TOKEN_REGISTER
	TOKEN_HEX
	TOKEN_BIN
	TOKEN_DEC
	TOKEN_MNEMONIC
	TOKEN_NEWLINE
	TOKEN_SKIP
	TOKEN_MISMATCH
)

const (
	STATEMENT_LABEL StatementType = iota
	STATEMENT_INSTRUCTION
)

const (
	MaxProgramSize = 1024
	NumRegisters   = 8
)

// Lexical patterns tried in order at each scan position. Some patterns are
// prefixes of others, so precedence matters: a label must beat an identifier,
// a register must beat a mnemonic, and the final single-character pattern
// catches anything no other pattern recognizes.
var tokenSpec = []struct {
	Type    TokenType
	Pattern string
}{
	{TOKEN_COMMENT, `;[^\n]*`},
	{TOKEN_LABEL, `\.[A-Za-z_][A-Za-z0-9_]*:`},
	{TOKEN_IDENT, `\.[A-Za-z_][A-Za-z0-9_]*`},
	{TOKEN_REGISTER, `R[0-9]+`},
	{TOKEN_HEX, `-?0x[0-9A-Fa-f]+`},
	{TOKEN_BIN, `-?0b[01]+`},
	{TOKEN_DEC, `-?[0-9]+`},
	{TOKEN_MNEMONIC, `[A-Za-z]+`},
	{TOKEN_NEWLINE, `\n`},
	{TOKEN_SKIP, `[\t ,]+`},
	{TOKEN_MISMATCH, `.`},
}

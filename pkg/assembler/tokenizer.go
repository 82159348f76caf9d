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
	"regexp"
	"strings"
)

var masterPattern = func() *regexp.Regexp {
	patterns := make([]string, 0, len(tokenSpec))

	for _, spec := range tokenSpec {
		patterns = append(patterns, "("+spec.Pattern+")")
	}

	return regexp.MustCompile(strings.Join(patterns, "|"))
}()

// Tokenize converts source text into a flat sequence of positioned tokens.
// Comments, separators and newlines are consumed but never emitted; the
// first byte no pattern recognizes aborts the scan with its exact position.
func Tokenize(source string) ([]Token, error) {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	tokens := make([]Token, 0, len(source)/4)

	line := 1
	lineStart := 0
	pos := 0

	for pos < len(source) {
		loc := masterPattern.FindStringSubmatchIndex(source[pos:])

		var matched TokenType = TOKEN_NONE
		var end int

		for i := range tokenSpec {
			if loc[2*(i+1)] >= 0 {
				matched = tokenSpec[i].Type
				end = loc[2*(i+1)+1]
				break
			}
		}

		switch matched {
		case TOKEN_NEWLINE:
			line++
			lineStart = pos + end

		case TOKEN_COMMENT, TOKEN_SKIP:
			// Consumed, never emitted

		case TOKEN_MISMATCH:
			cursor := Cursor{
				Line:     line,
				Column:   pos - lineStart + 1,
				Byte:     int64(pos),
				Size:     int64(end),
				LineByte: int64(lineStart),
			}

			return nil, &UnexpectedCharError{
				cursor, []rune(source[pos : pos+end])[0],
			}

		default:
			tokens = append(tokens, Token{
				Type: matched,
				Position: Cursor{
					Line:     line,
					Column:   pos - lineStart + 1,
					Byte:     int64(pos),
					Size:     int64(end),
					LineByte: int64(lineStart),
				},
				Value: source[pos : pos+end],
			})
		}

		pos += end
	}

	return tokens, nil
}

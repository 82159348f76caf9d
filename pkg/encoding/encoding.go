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

package encoding

import (
	"strconv"
	"strings"
)

// Decodes a numeric literal in the formats: 123, -123, 0x7A, -0x7A, 0b101,
// -0b101. The radix is taken from the literal's own prefix; an unprefixed
// literal is decimal, so a leading zero never selects octal.
func DecodeNumber(s string) (int, error) {
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	base := 10

	if strings.HasPrefix(digits, "0x") {
		base = 16
		digits = digits[2:]
	} else if strings.HasPrefix(digits, "0b") {
		base = 2
		digits = digits[2:]
	}

	result, err := strconv.ParseInt(digits, base, 64)

	if err != nil {
		return 0, err
	}

	if negative {
		result = -result
	}

	return int(result), nil
}

// Decodes a register token in the format R<digits> to its register index.
func DecodeRegister(s string) (int, error) {
	result, err := strconv.Atoi(strings.TrimPrefix(s, "R"))

	if err != nil {
		return 0, err
	}

	return result, nil
}

// FieldBits renders value as a zero-padded binary string of exactly width
// characters. Negative values wrap via two's complement (value + 2^width);
// values that do not fit the field keep only their low width bits.
func FieldBits(value int, width int) string {
	if value < 0 {
		value += 1 << width
	}

	masked := uint64(value) & ((1 << width) - 1)

	bits := strconv.FormatUint(masked, 2)

	if len(bits) < width {
		bits = strings.Repeat("0", width-len(bits)) + bits
	}

	return bits
}

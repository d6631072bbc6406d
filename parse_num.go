// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

// Package numconv converts decimal and hex numerals into 128 bit unsigned
// integers, using two's complement for negative values.
package numconv

import (
	"github.com/shabbyrobe/go-num"
)

// hex number prefix (lowercase only)
var hexPrefix = [2]byte{'0', 'x'}

func hasHexPrefix(b []byte) bool {
	return len(b) >= len(hexPrefix) && b[0] == hexPrefix[0] &&
		b[1] == hexPrefix[1]
}

// skipPlus skips over one optional '+' in front of an unsigned number.
func skipPlus(b []byte) []byte {
	if len(b) > 0 && b[0] == '+' {
		return b[1:]
	}
	return b
}

// ParseNumBytes converts a decimal, hex ("0x" prefix) or negative decimal
// ("-" prefix) number into an uint128.
// For negative numbers the returned value is the 128 bit two's complement
// representation and the returned bool is true.
// Negative numbers must fit in a signed 128 bit integer
// ([-2^127, -0]), the others in an unsigned one. "-0" yields 0 and
// the minimum signed value yields 2^127.
// Unsigned numbers may start with a '+'. No whitespace is allowed.
// On error the returned value should be ignored.
func ParseNumBytes(b []byte) (num.U128, bool, ErrorNum) {
	var hi, lo uint64
	var err ErrorNum

	if len(b) == 0 {
		return num.U128{}, false, ErrNumEmpty
	}
	if b[0] == '-' {
		d := b[1:]
		if hasHexPrefix(d) {
			return num.U128{}, true, ErrNumNegHex
		}
		if hi, lo, err = decToU128(d); err != 0 {
			return num.U128{}, true, err
		}
		if !fitsNegI128(hi, lo) {
			return num.U128{}, true, ErrNumTooBig
		}
		hi, lo = twosCompl128(hi, lo)
		return num.U128FromRaw(hi, lo), true, ErrNumOk
	}
	// "0x" alone is handled (and rejected) as a decimal number
	if len(b) > len(hexPrefix) && hasHexPrefix(b) {
		hi, lo, err = hexToU128(skipPlus(b[len(hexPrefix):]))
	} else {
		hi, lo, err = decToU128(skipPlus(b))
	}
	if err != 0 {
		return num.U128{}, false, err
	}
	return num.U128FromRaw(hi, lo), false, ErrNumOk
}

// ParseNum is the string version of ParseNumBytes.
func ParseNum(s string) (num.U128, bool, ErrorNum) {
	v, neg, err := ParseNumBytes([]byte(s))
	if err != 0 && DBGon() {
		DBG("ParseNum: %q: %s\n", s, err)
	}
	return v, neg, err
}

// StrToNum tries to convert s into an uint128. If s is negative it returns
// the two's complement and true as the second value.
// The last returned value is false if s is not a valid number (in which
// case the other values should be ignored).
func StrToNum(s string) (num.U128, bool, bool) {
	v, neg, err := ParseNum(s)
	if err != 0 {
		return num.U128{}, false, false
	}
	return v, neg, true
}

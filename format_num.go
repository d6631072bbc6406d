// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package numconv

import (
	"github.com/shabbyrobe/go-num"
)

const hexDigits = "0123456789abcdef"

// FormatNum is the reverse of ParseNum: it returns a string that
// ParseNum() would convert back into (v, neg).
// base can be 10 or 16. Negative numbers (neg == true) are always
// written in decimal, as "-" followed by the two's complement of v, and
// base is ignored.
// It returns "" for unsupported bases or if neg is set and v is not a
// valid negative two's complement value (0 < v < 2^127).
func FormatNum(v num.U128, neg bool, base int) string {
	if neg {
		hi, lo := v.Raw()
		hi, lo = twosCompl128(hi, lo)
		if !fitsNegI128(hi, lo) {
			return ""
		}
		return "-" + num.U128FromRaw(hi, lo).String()
	}
	switch base {
	case 10:
		return v.String()
	case 16:
		return "0x" + u128ToHex(v)
	}
	ERR("FormatNum: unsupported base %d\n", base)
	return ""
}

func u128ToHex(v num.U128) string {
	var buf [32]byte
	hi, lo := v.Raw()
	i := len(buf)
	for {
		i--
		buf[i] = hexDigits[lo&0xf]
		lo = (lo >> 4) | (hi << 60)
		hi >>= 4
		if hi == 0 && lo == 0 {
			break
		}
	}
	return string(buf[i:])
}

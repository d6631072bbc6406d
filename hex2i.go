// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package numconv

import (
	"github.com/intuitivelabs/bytescase"
)

var hex2int8 [128]int8

func init() {
	for i := 0; i < len(hex2int8); i++ {
		c := bytescase.ByteToLower(byte(i))
		if c >= '0' && c <= '9' {
			hex2int8[i] = int8(c - '0')
		} else if c >= 'a' && c <= 'f' {
			hex2int8[i] = int8(c-'a') + 10
		} else {
			hex2int8[i] = -1
		}
	}
}

// value >=0 on success, <0 on failure
func hexDigToI(c byte) int {
	return int(hex2int8[c&0x7f] | int8(c&0x80))
}

// hexToU128 converts a sequence of hex digits (no prefix, no sign) into
// the hi and lo 64 bit halves of an uint128.
// It returns ErrNumNoDigits for an empty b, ErrNumBadChar for non-hex
// characters and ErrNumTooBig if the value does not fit in 128 bits.
// Leading zeros are allowed.
func hexToU128(b []byte) (hi, lo uint64, err ErrorNum) {
	if len(b) == 0 {
		return 0, 0, ErrNumNoDigits
	}
	for _, d := range b {
		v := hexDigToI(d)
		if v < 0 {
			return hi, lo, ErrNumBadChar
		}
		if hi>>60 != 0 {
			// next shift would lose significant bits
			return hi, lo, ErrNumTooBig
		}
		hi = (hi << 4) | (lo >> 60)
		lo = (lo << 4) | uint64(v)
	}
	return hi, lo, ErrNumOk
}

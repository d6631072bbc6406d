// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package numconv

// value >=0 on success, <0 on failure
func decDigToI(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return -1
}

// decToU128 converts a sequence of decimal digits (no sign) into
// the hi and lo 64 bit halves of an uint128.
// The returned errors are the same as for hexToU128().
func decToU128(b []byte) (hi, lo uint64, err ErrorNum) {
	if len(b) == 0 {
		return 0, 0, ErrNumNoDigits
	}
	for _, d := range b {
		v := decDigToI(d)
		if v < 0 {
			return hi, lo, ErrNumBadChar
		}
		var ok bool
		if hi, lo, ok = mulAddU128(hi, lo, 10, uint64(v)); !ok {
			return hi, lo, ErrNumTooBig
		}
	}
	return hi, lo, ErrNumOk
}

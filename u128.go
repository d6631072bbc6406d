// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package numconv

import (
	"math/bits"
)

// sign bit of the hi half of a 128 bit two's complement number
const signBit128 = uint64(1) << 63

// mulAddU128 computes hi:lo * m + a.
// On 128 bit overflow it returns false (and undefined hi & lo).
func mulAddU128(hi, lo, m, a uint64) (uint64, uint64, bool) {
	over, rhi := bits.Mul64(hi, m)
	if over != 0 {
		return hi, lo, false
	}
	carryHi, rlo := bits.Mul64(lo, m)
	var c uint64
	rhi, c = bits.Add64(rhi, carryHi, 0)
	if c != 0 {
		return hi, lo, false
	}
	rlo, c = bits.Add64(rlo, a, 0)
	rhi, c = bits.Add64(rhi, 0, c)
	if c != 0 {
		return hi, lo, false
	}
	return rhi, rlo, true
}

// twosCompl128 returns the 128 bit two's complement of hi:lo (^x + 1),
// wrapping around for 0.
func twosCompl128(hi, lo uint64) (uint64, uint64) {
	rlo, c := bits.Add64(^lo, 1, 0)
	rhi, _ := bits.Add64(^hi, 0, c)
	return rhi, rlo
}

// fitsNegI128 returns true if -(hi:lo) is representable as a signed
// 128 bit integer (hi:lo <= 2^127).
func fitsNegI128(hi, lo uint64) bool {
	return hi < signBit128 || (hi == signBit128 && lo == 0)
}

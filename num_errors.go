// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package numconv

// ErrorNum is the type for the errors returned by the number parsing
// functions. It implements the error interface. The zero value is by
// convention a non-error, so to convert from ErrorNum to error one
// should use ErrorConv() or: if (errNum == 0) { return nil } else { return errNum }.
// (similar to syscall.Errno)
type ErrorNum uint32

// Possible error values for the number parsing functions.
const (
	ErrNumOk       ErrorNum = iota // no error, equiv. to nil
	ErrNumEmpty                    // empty input
	ErrNumNoDigits                 // sign or 0x prefix not followed by digits
	ErrNumBadChar                  // invalid digit for the number base
	ErrNumTooBig                   // does not fit in 128 bits
	ErrNumNegHex                   // -0x... not supported
	ErrConvBug
)

// error values corresp. to each ErrorNum value: this way the interface
// allocations are done only once
// NOTE: keep in sync with the const above
var errNum2ErrorVal = [...]error{
	nil, // 0 corresp. to nil
	ErrNumEmpty,
	ErrNumNoDigits,
	ErrNumBadChar,
	ErrNumTooBig,
	ErrNumNegHex,
	ErrConvBug,
}

var errNumStr = [...]string{
	ErrNumOk:       "no error",
	ErrNumEmpty:    "empty number",
	ErrNumNoDigits: "no digits after sign or prefix",
	ErrNumBadChar:  "invalid character in number",
	ErrNumTooBig:   "number too big for 128 bits",
	ErrNumNegHex:   "negative hex numbers not supported",
	ErrConvBug:     "error conversion BUG",
}

func (e ErrorNum) Error() string {
	if int(e) < len(errNumStr) {
		return errNumStr[e]
	}
	return errNumStr[ErrConvBug]
}

// ErrorConv() converts the ErrorNum value to error.
// It uses "boxed" values to prevent runtime allocations
func (e ErrorNum) ErrorConv() error {
	if int(e) < len(errNum2ErrorVal) {
		return errNum2ErrorVal[e]
	}
	BUG("invalid ErrorNum value %d\n", uint32(e))
	return ErrConvBug
}

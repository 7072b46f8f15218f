// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check

import (
	"fmt"
)

// Check asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of the state of the program and will result in a panic.
func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic("check failed: " + assertMsg)
	}
}

// Checkf is [Check] with the message formatted according to normal go printf semantics.
func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic("check failed: " + fmt.Sprintf(format, a...))
	}
}

// NoErr asserts that the given error is in fact nil, if it is not error then it's assumed to be an
// unrecoverable error and will result in a panic.
func NoErr(err error, msg string) {
	Checkf(err == nil, "%s: %s", msg, err)
}

// Must takes the result of a tuple function, e.g.
//
//	ParsePalette(data []byte) (Palette, error)
//
// And will check the error, panicking if it is not nil, otherwise returning the value. Only data which is
// compiled into the binary should go through Must, user input deserves a real error.
func Must[T any](t T, err error) T {
	NoErr(err, "Must")
	return t
}

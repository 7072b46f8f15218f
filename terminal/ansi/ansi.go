// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import (
	"strconv"
)

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	// FormattingReset turns all attributes off, including colour, bold, etc.
	FormattingReset = CSI + "0m"
)

// helpful short hands inside the package

var i = strconv.Itoa
var r = FormattingReset

// Colours Section:

func Cyan(s string) string   { return CSI + "96m" + s + r }
func Gray(s string) string   { return CSI + "90m" + s + r }
func Green(s string) string  { return CSI + "92m" + s + r }
func Red(s string) string    { return CSI + "91m" + s + r }
func Yellow(s string) string { return CSI + "93m" + s + r }

// 16,777,216 Colours (24-bit)

// TrueColour is the 24-bit colour choice this is the same as CSS colouring, note that not all terminals will
// support this.
//
// https://en.wikipedia.org/wiki/Color_depth#True_color_(24-bit)
func TrueColour(s string, red, green, blue uint8) string {
	return CSI + "38;2;" + rgb(red, green, blue) + "m" + s + r
}

// TrueColourBackground is [TrueColour] for the cell background rather than the glyph.
func TrueColourBackground(s string, red, green, blue uint8) string {
	return CSI + "48;2;" + rgb(red, green, blue) + "m" + s + r
}

func rgb(red, green, blue uint8) string {
	return i(int(red)) + ";" + i(int(green)) + ";" + i(int(blue))
}

// Fonts:

func Bold(s string) string { return CSI + "1m" + s + r }

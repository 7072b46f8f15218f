// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package colour is the codec between the 6 hex digit strings found in Oceania theme files and 8-bit per
// channel RGB values.
package colour

import (
	"strconv"

	"github.com/Lexer747/oceania-theme/terminal/ansi"
	"github.com/Lexer747/oceania-theme/utils/errors"
)

// ErrFormat marks every error returned by [Decode].
var ErrFormat = errors.New("colour format error")

// RGB is an opaque colour with three 8-bit channels. There is no alpha, the toolkit supplies that.
type RGB struct {
	R, G, B uint8
}

// Black is the zero value, used for the borders which the palette has no entry for.
var Black = RGB{}

// Decode parses exactly 6 hex digits (no '#' prefix, either case) as red, green then blue.
func Decode(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, errors.WrapErrf(ErrFormat, "Wrong number of digits for colour %q, should be 6 hex digits", s)
	}
	for i := range len(s) {
		if !isHexDigit(s[i]) {
			return RGB{}, errors.WrapErrf(ErrFormat, "Invalid hex digit %q at position %d of colour %q", s[i], i, s)
		}
	}
	r, rerr := strconv.ParseUint(s[0:2], 16, 8)
	g, gerr := strconv.ParseUint(s[2:4], 16, 8)
	b, berr := strconv.ParseUint(s[4:6], 16, 8)
	if err := errors.Join(rerr, gerr, berr); err != nil {
		return RGB{}, errors.WrapErr(errors.Wrapf(err, "Couldn't parse RGB values for %q", s), ErrFormat)
	}
	// G115: ParseUint was bounded to 8 bits above ^
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil //nolint:gosec
}

// MustDecode is [Decode] for colour literals in source code, it panics on bad input.
func MustDecode(s string) RGB {
	c, err := Decode(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Encode is the canonical form of a colour: lowercase, each channel zero padded to 2 digits.
func Encode(c RGB) string {
	return channel(c.R) + channel(c.G) + channel(c.B)
}

func channel(v uint8) string {
	s := strconv.FormatUint(uint64(v), 16)
	if v < 16 {
		return "0" + s
	}
	return s
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func (c RGB) String() string {
	return Encode(c)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(Encode(c)), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// Paint colours the glyphs of [s] with this colour for a 24-bit terminal.
func (c RGB) Paint(s string) string {
	return ansi.TrueColour(s, c.R, c.G, c.B)
}

// Fill colours the background behind [s] with this colour for a 24-bit terminal.
func (c RGB) Fill(s string) string {
	return ansi.TrueColourBackground(s, c.R, c.G, c.B)
}

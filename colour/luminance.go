// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

// Luminance is the perceived brightness of a colour, 0 is black and 1 is white.
type Luminance float64

func (l Luminance) IsDark() bool {
	return l < 0.5
}

// White is the label colour [RGB.Contrast] picks for dark swatches.
var White = RGB{R: 0xff, G: 0xff, B: 0xff}

// Luminance weighs each channel by the CCIR 601 (https://en.wikipedia.org/wiki/Rec._601) coefficients.
func (c RGB) Luminance() Luminance {
	weighted := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return Luminance(weighted / 0xff)
}

// Contrast is the colour text drawn on top of c should use: [White] on dark colours, [Black] otherwise.
func (c RGB) Contrast() RGB {
	if c.Luminance().IsDark() {
		return White
	}
	return Black
}

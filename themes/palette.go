// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/sliceutils"
)

// ErrPaletteParse is returned when a palette file exists but is not valid TOML or lacks one of the eleven
// required colours.
var ErrPaletteParse = errors.New("palette parse error")

// Palette is the raw colour set of a theme exactly as it appears in a theme.toml file, every value is a 6
// hex digit colour without a '#'. A Palette only becomes usable once it has been through [Resolve].
type Palette struct {
	Background1 string `toml:"bg_color1"`
	Background2 string `toml:"bg_color2"`
	Background3 string `toml:"bg_color3"`
	Text        string `toml:"txt_color"`
	Red         string `toml:"red"`
	Orange      string `toml:"orange"`
	Yellow      string `toml:"yellow"`
	Green       string `toml:"green"`
	Blue        string `toml:"blue"`
	Purple      string `toml:"purple"`
	Pink        string `toml:"pink"`
}

type paletteEntry struct {
	key string
	hex string
}

// entries lists the fields in file order, keyed by their TOML name.
func (p Palette) entries() []paletteEntry {
	return []paletteEntry{
		{key: "bg_color1", hex: p.Background1},
		{key: "bg_color2", hex: p.Background2},
		{key: "bg_color3", hex: p.Background3},
		{key: "txt_color", hex: p.Text},
		{key: "red", hex: p.Red},
		{key: "orange", hex: p.Orange},
		{key: "yellow", hex: p.Yellow},
		{key: "green", hex: p.Green},
		{key: "blue", hex: p.Blue},
		{key: "purple", hex: p.Purple},
		{key: "pink", hex: p.Pink},
	}
}

// PaletteKeys are the names of every required key in a palette file.
func PaletteKeys() []string {
	return sliceutils.Map(Palette{}.entries(), func(e paletteEntry) string { return e.key })
}

// ParsePalette decodes the contents of a theme.toml file. Unknown keys are ignored, a missing key or a
// malformed document is an [ErrPaletteParse]. The colour values are not validated here, see [Resolve].
func ParsePalette(data []byte) (Palette, error) {
	p := Palette{}
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Palette{}, errors.WrapErr(errors.Wrap(err, "malformed palette"), ErrPaletteParse)
	}
	missing := sliceutils.Filter(PaletteKeys(), func(key string) bool { return !md.IsDefined(key) })
	if len(missing) > 0 {
		return Palette{}, errors.WrapErrf(ErrPaletteParse, "palette is missing required fields: %s", strings.Join(missing, ", "))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Debug("ignoring unknown palette keys", "keys", sliceutils.JoinFunc(undecoded, toml.Key.String, ", "))
	}
	return p, nil
}

// TOML encodes the palette in the same shape [ParsePalette] reads.
func (p Palette) TOML() ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(p); err != nil {
		return nil, errors.Wrap(err, "failed to encode palette")
	}
	return b.Bytes(), nil
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	_ "embed"

	"github.com/Lexer747/oceania-theme/utils/check"
)

// Set holds one resolved theme per [Selection].
type Set struct {
	Light  Resolved
	Dark   Resolved
	Custom Resolved
}

// NewSet pairs a custom theme with the built in light and dark themes.
func NewSet(custom Resolved) Set {
	return Set{
		Light:  LightTheme,
		Dark:   DarkTheme,
		Custom: custom,
	}
}

func (s Set) Select(sel Selection) Resolved {
	switch sel {
	case Dark:
		return s.Dark
	case Custom:
		return s.Custom
	default:
		return s.Light
	}
}

// DefaultPaletteTOML is written to a user's config directory when no theme.toml can be found, byte for byte.
//
//go:embed builtins/default.toml
var DefaultPaletteTOML []byte
var DefaultPalette = check.Must(ParsePalette(DefaultPaletteTOML))

//go:embed builtins/light.toml
var lightBytes []byte
var LightPalette = check.Must(ParsePalette(lightBytes))
var LightTheme = check.Must(Resolve(LightPalette))

//go:embed builtins/dark.toml
var darkBytes []byte
var DarkPalette = check.Must(ParsePalette(darkBytes))
var DarkTheme = check.Must(Resolve(DarkPalette))

// BuiltinPalette returns the palette compiled in for [sel], the custom variant reports the default palette.
func BuiltinPalette(sel Selection) Palette {
	switch sel {
	case Dark:
		return DarkPalette
	case Custom:
		return DefaultPalette
	default:
		return LightPalette
	}
}

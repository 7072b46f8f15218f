// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package show

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/config"
	"github.com/Lexer747/oceania-theme/styles"
	"github.com/Lexer747/oceania-theme/terminal/ansi"
	"github.com/Lexer747/oceania-theme/themes"
	"github.com/Lexer747/oceania-theme/utils/application"
	"github.com/Lexer747/oceania-theme/utils/check"
	"github.com/Lexer747/oceania-theme/utils/env"
)

type Config struct {
	*application.BuildInfo
	*application.SharedFlags
	*tabflags.FlagSet

	plain *bool
	theme *string
	toml  *bool
}

func GetFlags(info *application.BuildInfo) *Config {
	f := tabflags.NewAutoCompleteFlagSet(flag.NewFlagSet("show", flag.ContinueOnError), tabflags.AutoComplete{})
	return &Config{
		BuildInfo:   info,
		SharedFlags: application.NewSharedFlags(f),
		FlagSet:     f,

		plain: f.Bool("plain", false, "print hex values only, this is the default when stdout isn't a terminal"),
		theme: f.String("theme", "", "show this theme instead of the selected one, one of light, dark or custom",
			tabflags.AutoComplete{Choices: themes.SelectionNames()}),
		toml:  f.Bool("toml", false, "print the palette of the theme as a theme.toml, useful as a starting point for a custom theme"),
	}
}

func RunShow(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	truecolour := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
	c.RunLogged(c.BuildInfo, "Failed to show theme", func() error {
		return Show(c, os.Stdout, env.OS, truecolour)
	})
}

// Show loads the theme files found through [lookup] and writes the chosen theme to [w].
func Show(c *Config, w io.Writer, lookup env.LookupFunc, truecolour bool) error {
	loaded, err := config.Load(lookup)
	if err != nil {
		return err
	}
	selection := loaded.Selection
	if *c.theme != "" {
		selection, err = themes.ParseSelectionName(*c.theme)
		if err != nil {
			return err
		}
	}

	if *c.toml {
		palette := themes.BuiltinPalette(selection)
		if selection == themes.Custom {
			palette = loaded.Palette
		}
		data, err := palette.TOML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	colourful := truecolour && !*c.plain
	heading := func(s string) string { return s }
	if colourful {
		heading = ansi.Cyan
	}
	active := loaded.Set.Select(selection)
	fmt.Fprintf(w, "%s theme\n", heading(selection.String()))
	if selection == themes.Custom {
		fmt.Fprintf(w, "palette: %s\n", describeSource(loaded))
	}
	for _, line := range active.Describe(colourful) {
		fmt.Fprintln(w, line)
	}
	if colourful {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.New(active).Preview(themes.SelectionNames(), int(selection)))
	}
	return nil
}

func describeSource(l *config.Loaded) string {
	switch l.Source {
	case config.User:
		return l.Paths.Theme
	case config.System:
		return l.Paths.SystemTheme
	default:
		return "built in default, written to " + l.Paths.Theme
	}
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package selecttheme

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/config"
	"github.com/Lexer747/oceania-theme/themes"
	"github.com/Lexer747/oceania-theme/utils/application"
	"github.com/Lexer747/oceania-theme/utils/check"
	"github.com/Lexer747/oceania-theme/utils/env"
	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/exit"
)

type Config struct {
	*application.BuildInfo
	*application.SharedFlags
	*tabflags.FlagSet
}

func GetFlags(info *application.BuildInfo) *Config {
	f := tabflags.NewAutoCompleteFlagSet(flag.NewFlagSet("select", flag.ContinueOnError),
		tabflags.AutoComplete{Choices: themes.SelectionNames()})
	ret := &Config{
		BuildInfo:   info,
		SharedFlags: application.NewSharedFlags(f),
		FlagSet:     f,
	}
	f.Usage = func() {
		fmt.Fprint(f.Output(), "Usage of select: saves which theme is active\n"+
			"\tselect light|dark|custom\n\n")
		f.PrintDefaults()
	}
	return ret
}

func RunSelect(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	if c.NArg() == 0 {
		c.Usage()
		exit.Usage("select expects one of light, dark or custom")
	}
	c.RunLogged(c.BuildInfo, "Failed to select theme", func() error {
		return Select(c.Args(), env.OS, os.Stdout)
	})
}

// Select saves the single theme name in [args] to the cfg.toml found through [lookup].
func Select(args []string, lookup env.LookupFunc, w io.Writer) error {
	if len(args) != 1 {
		return errors.Errorf("expected exactly one theme name, got %d", len(args))
	}
	selection, err := themes.ParseSelectionName(args[0])
	if err != nil {
		return err
	}
	root, err := config.Root(lookup)
	if err != nil {
		return err
	}
	paths := config.NewPaths(root)
	if err := config.SaveSelection(paths, selection); err != nil {
		return err
	}
	fmt.Fprintf(w, "theme set to %s in %s\n", selection, paths.Selection)
	return nil
}

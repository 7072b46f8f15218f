// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package config finds and reads the Oceania theme files:
//
//   - <config-root>/Oceania/theme.toml, the user's palette, falling back to /etc/Oceania/theme.toml and then to
//     a built in default which is written back to the user's path.
//   - <config-root>/Oceania/cfg.toml, which of the light, dark or custom themes is active.
//
// The config root is $XDG_CONFIG_HOME, or $HOME/.config when that is unset.
package config

import (
	"path/filepath"

	"github.com/Lexer747/oceania-theme/utils/env"
	"github.com/Lexer747/oceania-theme/utils/errors"
)

// ErrEnvironmentMissing is returned when neither XDG_CONFIG_HOME nor HOME is set. Nothing can be loaded
// without a config root so this should end the program.
var ErrEnvironmentMissing = errors.New("Failed to find config directory, make sure XDG_CONFIG_HOME or HOME are set")

const (
	appDir        = "Oceania"
	themeFile     = "theme.toml"
	selectionFile = "cfg.toml"
	systemDir     = "/etc"
)

// Root locates the base configuration directory using [lookup] for the environment.
func Root(lookup env.LookupFunc) (string, error) {
	if xdg, ok := lookup.NonEmpty(env.XDG_CONFIG_HOME); ok {
		return xdg, nil
	}
	if home, ok := lookup.NonEmpty(env.HOME); ok {
		return filepath.Join(home, ".config"), nil
	}
	return "", ErrEnvironmentMissing
}

// Paths are every file location this package reads or writes.
type Paths struct {
	// Dir is created when the default palette has to be persisted.
	Dir         string
	Theme       string
	Selection   string
	SystemTheme string
}

func NewPaths(root string) Paths {
	dir := filepath.Join(root, appDir)
	return Paths{
		Dir:         dir,
		Theme:       filepath.Join(dir, themeFile),
		Selection:   filepath.Join(dir, selectionFile),
		SystemTheme: filepath.Join(systemDir, appDir, themeFile),
	}
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package config

import (
	"log/slog"
	"os"

	"github.com/Lexer747/oceania-theme/themes"
	"github.com/Lexer747/oceania-theme/utils/errors"
)

// Source is where a palette was loaded from.
type Source int

const (
	User Source = iota
	System
	Default
)

func (s Source) String() string {
	switch s {
	case User:
		return "user"
	case System:
		return "system"
	case Default:
		return "default"
	}
	return "unknown source"
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LoadPalette reads the user's palette, or the system palette if the user has none. With neither present the
// built in default is written to the user's path and used. A file which exists but can't be parsed is an
// error matching [themes.ErrPaletteParse], it is never replaced by the default.
func LoadPalette(p Paths) (themes.Palette, Source, error) {
	data, source, err := readPalette(p)
	if err != nil {
		return themes.Palette{}, source, err
	}
	palette, err := themes.ParsePalette(data)
	if err != nil {
		return themes.Palette{}, source, errors.Wrapf(err, "failed to load %s palette", source)
	}
	slog.Info("loaded palette", "source", source)
	return palette, source, nil
}

func readPalette(p Paths) ([]byte, Source, error) {
	data, found, err := readIfExists(p.Theme)
	if err != nil || found {
		return data, User, err
	}
	slog.Debug("no user palette", "path", p.Theme)

	data, found, err = readIfExists(p.SystemTheme)
	if err != nil || found {
		return data, System, err
	}
	slog.Debug("no system palette", "path", p.SystemTheme)

	if err := persistDefault(p); err != nil {
		return nil, Default, err
	}
	return themes.DefaultPaletteTOML, Default, nil
}

func persistDefault(p Paths) error {
	if err := os.MkdirAll(p.Dir, dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create config directory %q", p.Dir)
	}
	if err := os.WriteFile(p.Theme, themes.DefaultPaletteTOML, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write default palette to %q", p.Theme)
	}
	slog.Info("wrote default palette", "path", p.Theme)
	return nil
}

// readIfExists reads [path] reporting found as false only when the file does not exist, every other failure
// is an error.
func readIfExists(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read %q", path)
	}
	return data, true, nil
}

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

// LoadSelection reads which theme is active. This never fails: a missing, unreadable or malformed cfg.toml
// is [themes.Light].
func LoadSelection(p Paths) themes.Selection {
	data, found, err := readIfExists(p.Selection)
	if err != nil {
		slog.Warn("couldn't read selection, using light", "path", p.Selection, "err", err)
		return themes.Light
	}
	if !found {
		slog.Debug("no selection, using light", "path", p.Selection)
		return themes.Light
	}
	selection, err := themes.ParseSelection(data)
	if err != nil {
		slog.Warn("couldn't parse selection, using light", "path", p.Selection, "err", err)
		return themes.Light
	}
	return selection
}

// SaveSelection writes [s] as the active theme, creating the config directory if needed.
func SaveSelection(p Paths, s themes.Selection) error {
	data, err := s.TOML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.Dir, dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create config directory %q", p.Dir)
	}
	if err := os.WriteFile(p.Selection, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write selection to %q", p.Selection)
	}
	slog.Info("saved selection", "path", p.Selection, "theme", s)
	return nil
}

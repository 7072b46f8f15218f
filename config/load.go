// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package config

import (
	"log/slog"

	"github.com/Lexer747/oceania-theme/themes"
	"github.com/Lexer747/oceania-theme/utils/env"
	"github.com/Lexer747/oceania-theme/utils/errors"
)

// Loaded is everything read at startup. It isn't modified afterwards.
type Loaded struct {
	Paths     Paths
	Source    Source
	Palette   themes.Palette
	Set       themes.Set
	Selection themes.Selection
}

// Active is the theme picked by the user's selection.
func (l *Loaded) Active() themes.Resolved {
	return l.Set.Select(l.Selection)
}

// Load runs the whole startup sequence against the environment given by [lookup]. Any error returned is
// fatal, the recoverable cases (no palette file, no selection) have already been handled.
func Load(lookup env.LookupFunc) (*Loaded, error) {
	root, err := Root(lookup)
	if err != nil {
		return nil, err
	}
	return LoadFrom(NewPaths(root))
}

// LoadFrom is [Load] with the paths already decided.
func LoadFrom(paths Paths) (*Loaded, error) {
	palette, source, err := LoadPalette(paths)
	if err != nil {
		return nil, err
	}
	custom, err := themes.Resolve(palette)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s palette", source)
	}
	selection := LoadSelection(paths)
	l := &Loaded{
		Paths:     paths,
		Source:    source,
		Palette:   palette,
		Set:       themes.NewSet(custom),
		Selection: selection,
	}
	slog.Info("loaded theme", "selection", selection, "theme", l.Active())
	return l, nil
}

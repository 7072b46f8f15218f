// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/Lexer747/oceania-theme/utils/errors"
)

// Selection is which of the three theme variants the user wants active.
type Selection int

const (
	Light Selection = iota
	Dark
	Custom
)

// ErrSelectionParse is returned for a cfg.toml which exists but can't be read as a selection. Callers are
// expected to fall back to [Light].
var ErrSelectionParse = errors.New("selection parse error")

type selectionFile struct {
	Theme string `toml:"theme"`
}

// SelectionFromName maps the name stored in cfg.toml to a variant. The match is case sensitive and anything
// unrecognised (including typos) is [Light].
func SelectionFromName(name string) Selection {
	switch name {
	case "dark":
		return Dark
	case "custom":
		return Custom
	default:
		return Light
	}
}

// ParseSelectionName is the strict version of [SelectionFromName] for command line input.
func ParseSelectionName(name string) (Selection, error) {
	switch name {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "custom":
		return Custom, nil
	}
	return Light, errors.Errorf("Unknown theme %q, should be one of light, dark or custom", name)
}

// SelectionNames lists every name [ParseSelectionName] accepts, in [Selection] order.
func SelectionNames() []string {
	return []string{Light.String(), Dark.String(), Custom.String()}
}

// ParseSelection decodes a cfg.toml. On any error the returned selection is still usable, it is [Light].
func ParseSelection(data []byte) (Selection, error) {
	f := selectionFile{}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Light, errors.WrapErr(errors.Wrap(err, "malformed selection"), ErrSelectionParse)
	}
	if !md.IsDefined("theme") {
		return Light, errors.WrapErrf(ErrSelectionParse, "selection is missing the %q field", "theme")
	}
	return SelectionFromName(f.Theme), nil
}

// TOML encodes the selection as a cfg.toml.
func (s Selection) TOML() ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(selectionFile{Theme: s.String()}); err != nil {
		return nil, errors.Wrap(err, "failed to encode selection")
	}
	return b.Bytes(), nil
}

func (s Selection) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	case Custom:
		return "custom"
	}
	return "unknown selection"
}

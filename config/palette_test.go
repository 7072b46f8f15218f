// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package config_test

import (
	"os"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Lexer747/oceania-theme/colour"
	"github.com/Lexer747/oceania-theme/config"
	"github.com/Lexer747/oceania-theme/themes"
	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/th"
)

func TestLoadPalette_WritesDefault(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	assert.Assert(t, !th.Exists(t, sb.Paths.Dir))

	p, source, err := config.LoadPalette(sb.Paths)
	assert.NilError(t, err)
	assert.Equal(t, source, config.Default)
	assert.Equal(t, p, themes.DefaultPalette)
	assert.Equal(t, th.ReadFile(t, sb.Paths.Theme), string(themes.DefaultPaletteTOML))

	// the persisted default is now the user's palette
	_, source, err = config.LoadPalette(sb.Paths)
	assert.NilError(t, err)
	assert.Equal(t, source, config.User)

	r, err := themes.Resolve(p)
	assert.NilError(t, err)
	assert.Equal(t, r.Application.Background, colour.MustDecode("181926"))
}

func TestLoadPalette_System(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	system := strings.ReplaceAll(string(themes.DefaultPaletteTOML), `blue = "8aadf4"`, `blue = "0000ff"`)
	th.WriteFile(t, sb.Paths.SystemTheme, system)

	p, source, err := config.LoadPalette(sb.Paths)
	assert.NilError(t, err)
	assert.Equal(t, source, config.System)
	assert.Equal(t, p.Blue, "0000ff")
	assert.Assert(t, !th.Exists(t, sb.Paths.Theme), "system palette should not be copied to the user")
}

func TestLoadPalette_UserWins(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	th.WriteFile(t, sb.Paths.SystemTheme, string(themes.DefaultPaletteTOML))
	user, err := themes.DarkPalette.TOML()
	assert.NilError(t, err)
	th.WriteFile(t, sb.Paths.Theme, string(user))

	p, source, err := config.LoadPalette(sb.Paths)
	assert.NilError(t, err)
	assert.Equal(t, source, config.User)
	assert.Equal(t, p, themes.DarkPalette)
}

func TestLoadPalette_MissingField(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	broken := strings.ReplaceAll(string(themes.DefaultPaletteTOML), `pink = "f5bde6"`, "")
	th.WriteFile(t, sb.Paths.Theme, broken)

	p, source, err := config.LoadPalette(sb.Paths)
	assert.Assert(t, errors.Is(err, themes.ErrPaletteParse), "%v", err)
	assert.Error(t, err, "failed to load user palette caused by: palette parse error caused by: palette is missing required fields: pink")
	assert.Equal(t, source, config.User)
	assert.Equal(t, p, themes.Palette{})
	// a broken file is left alone
	assert.Equal(t, th.ReadFile(t, sb.Paths.Theme), broken)
}

func TestLoadPalette_BrokenSystem(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	th.WriteFile(t, sb.Paths.SystemTheme, "this is not toml")

	_, source, err := config.LoadPalette(sb.Paths)
	assert.Assert(t, errors.Is(err, themes.ErrPaletteParse), "%v", err)
	assert.Equal(t, source, config.System)
	assert.Assert(t, !th.Exists(t, sb.Paths.Theme))
}

func TestLoadPalette_Unreadable(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	// a directory where the file should be can't be read and isn't "missing"
	assert.NilError(t, os.MkdirAll(sb.Paths.Theme, 0o755))

	_, _, err := config.LoadPalette(sb.Paths)
	assert.ErrorContains(t, err, "failed to read")
	assert.Assert(t, !errors.Is(err, themes.ErrPaletteParse))
	assert.Assert(t, !th.Exists(t, sb.Paths.SystemTheme))
}

func TestLoadPalette_NotADirectory(t *testing.T) {
	t.Parallel()
	sb := th.NewSandbox(t)
	// a file where the config directory should be
	th.WriteFile(t, sb.Paths.Dir, "")

	_, source, err := config.LoadPalette(sb.Paths)
	assert.ErrorContains(t, err, "failed to read")
	assert.Equal(t, source, config.User)
}

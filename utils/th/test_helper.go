// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Lexer747/oceania-theme/config"
	"github.com/Lexer747/oceania-theme/utils/env"
)

// Sandbox is a fake filesystem layout for the config package rooted in a test's temp dir. Nothing in a
// sandbox touches the real home directory or /etc.
type Sandbox struct {
	Root string
	// Env has HOME set to a directory under [Root] and no XDG_CONFIG_HOME.
	Env   env.LookupFunc
	Paths config.Paths
}

func NewSandbox(t testing.TB) Sandbox {
	t.Helper()
	root := t.TempDir()
	home := filepath.Join(root, "home")
	paths := config.NewPaths(filepath.Join(home, ".config"))
	paths.SystemTheme = filepath.Join(root, "etc", "Oceania", "theme.toml")
	return Sandbox{
		Root:  root,
		Env:   env.FromMap(map[string]string{env.HOME: home}),
		Paths: paths,
	}
}

// WriteFile creates [path] and its parent directories with [content].
func WriteFile(t testing.TB, path string, content string) {
	t.Helper()
	assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ReadFile returns the content of [path], failing the test if it can't be read.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	return string(data)
}

// Exists reports whether anything is at [path].
func Exists(t testing.TB, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	assert.NilError(t, err)
	return true
}

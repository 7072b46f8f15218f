// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:testpackage
package tabcompletion

import (
	"log"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Lexer747/oceania-theme/cmd/subcommands/hex"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/selecttheme"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/show"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/version"
	"github.com/Lexer747/oceania-theme/utils/sliceutils"
)

var base = Command{Cmd: "oceania-theme", Fs: show.GetFlags(nil).FlagSet}
var subCommands = []Command{
	{Cmd: "show", Fs: show.GetFlags(nil).FlagSet},
	{Cmd: "hex", Fs: hex.GetFlags(nil).FlagSet},
	{Cmd: "select", Fs: selecttheme.GetFlags(nil).FlagSet},
	{Cmd: "version", Fs: version.GetFlags(nil).FlagSet},
}

var showFlags = []string{"-l", "-plain", "-theme", "-toml", "-v"}

func TestGetChoices(t *testing.T) {
	t.Parallel()
	tests := []ChoicesTest{
		{
			Name:     "tab",
			Words:    []string{"oceania-theme", ""},
			Expected: slices.Concat([]string{"show", "hex", "select", "version"}, showFlags),
		},
		{Name: "start s", Words: []string{"oceania-theme", "s"}, Expected: []string{"show", "select"}},
		{Name: "start ver", Words: []string{"oceania-theme", "ver"}, Expected: []string{"version"}},
		{Name: "start -t", Words: []string{"oceania-theme", "-t"}, Expected: []string{"-theme", "-toml"}},
		{
			Name:     "show flags",
			Words:    []string{"oceania-theme", "show", ""},
			Expected: showFlags,
		},
		{
			Name:     "show -theme",
			Words:    []string{"oceania-theme", "show", "-theme", ""},
			Expected: []string{"light", "dark", "custom"},
		},
		{
			Name:     "show -theme d",
			Words:    []string{"oceania-theme", "show", "-theme", "d"},
			Expected: []string{"dark"},
		},
		{
			Name:     "base -theme dark",
			Words:    []string{"oceania-theme", "-theme", "dark", ""},
			Expected: []string{"-l", "-plain", "-toml", "-v"},
		},
		{
			Name:     "base -plain -toml",
			Words:    []string{"oceania-theme", "-plain", "-toml", "-"},
			Expected: []string{"-l", "-theme", "-v"},
		},
		{
			Name:     "show -l",
			Words:    []string{"oceania-theme", "show", "-l", ""},
			Expected: filesByExt(".log"),
		},
		{
			Name:     "select",
			Words:    []string{"oceania-theme", "select", ""},
			Expected: []string{"-l", "-v", "light", "dark", "custom"},
		},
		{
			Name:     "select -v c",
			Words:    []string{"oceania-theme", "select", "-v", "c"},
			Expected: []string{"custom"},
		},
		{
			Name:     "select dark",
			Words:    []string{"oceania-theme", "select", "dark", ""},
			Expected: []string{},
		},
		{
			Name:     "hex e",
			Words:    []string{"oceania-theme", "hex", "e"},
			Expected: []string{"encode"},
		},
		{
			Name:     "hex decode",
			Words:    []string{"oceania-theme", "hex", "decode", ""},
			Expected: []string{},
		},
		{
			Name:     "version",
			Words:    []string{"oceania-theme", "version", ""},
			Expected: []string{},
		},
	}
	for _, test := range tests {
		t.Run(test.Name, test.Run)
	}
}

func TestGetChoices_Errors(t *testing.T) {
	t.Parallel()
	_, err := getChoices(2, []string{"oceania-theme", "purple", ""}, base, subCommands)
	assert.Error(t, err, `No sub command found for "purple"`)
	_, err = getChoices(3, []string{"oceania-theme", ""}, base, subCommands)
	assert.Error(t, err, "cursor 3 is outside of the 2 words")
	_, err = getChoices(0, []string{"oceania-theme"}, base, subCommands)
	assert.Error(t, err, "cursor 0 is outside of the 1 words")
}

func TestGetChoices_CursorAtEnd(t *testing.T) {
	t.Parallel()
	// bash omits the empty word when the cursor is right after the last one
	actual, err := getChoices(2, []string{"oceania-theme", "select"}, base, subCommands)
	assert.NilError(t, err)
	assertEqual(t, actual, []string{"-l", "-v", "light", "dark", "custom"})
}

type ChoicesTest struct {
	Name     string
	Words    []string
	Expected []string
}

func (ct ChoicesTest) Run(t *testing.T) {
	t.Helper()
	t.Parallel()
	actual, err := getChoices(len(ct.Words)-1, ct.Words, base, subCommands)
	assert.NilError(t, err)
	assertEqual(t, actual, ct.Expected)
}

func filesByExt(ext string) []string {
	entries, err := os.ReadDir("./")
	if err != nil {
		log.Fatal(err)
	}
	files := sliceutils.Map(entries, func(d os.DirEntry) string { return d.Name() })
	return sliceutils.Filter(files, func(f string) bool { return filepath.Ext(f) == ext })
}

func assertEqual(t *testing.T, actual, expected []string) {
	t.Helper()
	actual = slices.Sorted(slices.Values(actual))
	expected = slices.Sorted(slices.Values(expected))
	assert.DeepEqual(t, actual, expected)
}

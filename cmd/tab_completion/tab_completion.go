// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package tabcompletion answers the shell when the user presses tab, see the oceania-theme script next to
// this file for the bash side.
package tabcompletion

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/exit"
	"github.com/Lexer747/oceania-theme/utils/sliceutils"
)

const AutoCompleteString = "b99c39ece88a07720ac27d8fb84dd8c6708298cb57a6420c88c7bb925629ec9a" // sha256 of `oceania-theme-autocomplete`

type Command struct {
	Cmd string
	Fs  *tabflags.FlagSet
}

// Run writes to stdout the space separated suggestions for the command line in [args] and exits. [args] are
// the program name, [AutoCompleteString], bash's COMP_CWORD and then every word of COMP_WORDS.
func Run(args []string, base Command, subCommands []Command) {
	// A mistake in here should only ever cost the user their suggestions.
	defer func() {
		if recover() != nil {
			tabExitFailure()
		}
	}()
	if len(args) < 3 {
		tabExitFailure()
	}
	index, err := strconv.Atoi(args[2])
	if err != nil {
		tabExitFailure()
	}
	choices, err := getChoices(index, args[3:], base, subCommands)
	if err != nil {
		tabExitFailure()
	}
	tabExit(choices)
}

// getChoices returns the suggestions for the word at [index] of [words], where words[0] is the program.
// It has no output but may list the working directory when a flag wants a file.
func getChoices(index int, words []string, base Command, cmds []Command) ([]string, error) {
	if index < 1 || index > len(words) {
		return nil, errors.Errorf("cursor %d is outside of the %d words", index, len(words))
	}
	cur := ""
	if index < len(words) {
		cur = words[index]
	}
	if index == 1 {
		subCommandNames := sliceutils.Map(cmds, func(c Command) string { return c.Cmd })
		return filterByPrefix(slices.Concat(subCommandNames, base.Fs.GetNames(nil)), cur), nil
	}

	cmd, typed := base, words[1:index]
	if !strings.HasPrefix(words[1], "-") {
		sub := words[1]
		choice := sliceutils.Filter(cmds, func(c Command) bool { return c.Cmd == sub })
		if len(choice) != 1 {
			return nil, errors.Errorf("No sub command found for %q", sub)
		}
		cmd, typed = choice[0], words[2:index]
	}

	prev := words[index-1]
	if strings.HasPrefix(prev, "-") {
		if ac := cmd.Fs.GetAutoCompleteFor(prev); ac != nil {
			return filterByPrefix(choicesFor(*ac), cur), nil
		}
	}
	if hasPositional(cmd.Fs, typed) {
		// flag parsing stops at the first positional arg, nothing after it is a flag
		return []string{}, nil
	}
	options := slices.Concat(cmd.Fs.GetNames(typed), choicesFor(cmd.Fs.Positional()))
	return filterByPrefix(options, cur), nil
}

func hasPositional(fs *tabflags.FlagSet, typed []string) bool {
	for i := 0; i < len(typed); i++ {
		word := typed[i]
		if !strings.HasPrefix(word, "-") {
			return true
		}
		if fs.GetAutoCompleteFor(word) != nil {
			i++ // skip the flag's value
		}
	}
	return false
}

func choicesFor(ac tabflags.AutoComplete) []string {
	if !ac.WantsFile {
		return ac.Choices
	}
	files := getWorkingDirFiles()
	if ac.FileExt != "" {
		files = sliceutils.Filter(files, func(path string) bool { return filepath.Ext(path) == ac.FileExt })
	}
	return slices.Concat(ac.Choices, files)
}

func getWorkingDirFiles() []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil
	}
	return sliceutils.Map(entries, os.DirEntry.Name)
}

func filterByPrefix(options []string, prefix string) []string {
	return sliceutils.Filter(options, func(s string) bool { return strings.HasPrefix(s, prefix) })
}

func tabExit(results []string) {
	fmt.Fprint(os.Stdout, strings.Join(results, " "))
	exit.Success()
}

func tabExitFailure() {
	tabExit([]string{})
}

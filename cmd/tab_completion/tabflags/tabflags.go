// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package tabflags

import (
	"flag"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/Lexer747/oceania-theme/utils/sliceutils"
)

// AutoComplete describes what can follow a flag (or a command, for its positional arguments).
type AutoComplete struct {
	// FileExt restricts the suggested files to this extension when [WantsFile] is set.
	FileExt   string
	Choices   []string
	WantsFile bool
}

// FlagSet is an extension of [flag.FlagSet] that enables auto completion providers for a command.
type FlagSet struct {
	*flag.FlagSet

	nameToAc   map[string]*AutoComplete
	o          *sync.Once
	positional AutoComplete
}

// NewAutoCompleteFlagSet wraps a [flag.FlagSet] with autocomplete configuration, [positional] is what should
// be suggested for the free form args of the command.
func NewAutoCompleteFlagSet(f *flag.FlagSet, positional AutoComplete) *FlagSet {
	return &FlagSet{
		FlagSet:    f,
		nameToAc:   map[string]*AutoComplete{},
		o:          &sync.Once{},
		positional: positional,
	}
}

// Positional is the autocomplete configuration for the free form args.
func (f *FlagSet) Positional() AutoComplete {
	return f.positional
}

// GetAutoCompleteFor returns the autocomplete configuration for the given CLI flag. Returns nil if the flag
// isn't known or takes no value.
func (f *FlagSet) GetAutoCompleteFor(flagName string) *AutoComplete {
	f.syncFlagSet()
	return f.nameToAc[strings.TrimPrefix(flagName, "-")]
}

// GetNames returns every flag name with its dash, sorted, skipping any already present in [toSkip].
func (f *FlagSet) GetNames(toSkip []string) []string {
	f.syncFlagSet()
	names := sliceutils.Map(slices.Sorted(maps.Keys(f.nameToAc)), func(n string) string { return "-" + n })
	return sliceutils.Filter(names, func(n string) bool { return !slices.Contains(toSkip, n) })
}

func (f *FlagSet) Has(flagName string) bool {
	f.syncFlagSet()
	_, has := f.nameToAc[strings.TrimPrefix(flagName, "-")]
	return has
}

// String see [FlagSet.String], also pass the autocomplete configuration for the flag's value.
//
// [FlagSet.String]: https://pkg.go.dev/flag#String
func (f *FlagSet) String(name string, value string, usage string, ac AutoComplete) *string {
	ret := f.FlagSet.String(name, value, usage)
	f.nameToAc[name] = &ac
	return ret
}

// syncFlagSet picks up the flags registered directly on the [flag.FlagSet], these take no value worth
// completing.
func (f *FlagSet) syncFlagSet() {
	f.o.Do(func() {
		f.VisitAll(func(subFlag *flag.Flag) {
			if _, alreadyRegistered := f.nameToAc[subFlag.Name]; !alreadyRegistered {
				f.nameToAc[subFlag.Name] = nil
			}
		})
	})
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:staticcheck
package env

import (
	"os"
	"strings"
)

const (
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	HOME            = "HOME"
)

// LookupFunc has the shape of [os.LookupEnv]. Anything which reads the environment takes one of these so
// that tests never depend on the environment of the process running them.
type LookupFunc func(name string) (string, bool)

// OS is the real process environment.
var OS LookupFunc = os.LookupEnv

// FromMap builds a [LookupFunc] over a fixed set of variables.
func FromMap(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// NonEmpty looks up [name] and reports false when the variable is unset or is only whitespace.
func (l LookupFunc) NonEmpty(name string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, ok := l(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

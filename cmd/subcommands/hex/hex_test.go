// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package hex_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Lexer747/oceania-theme/cmd/subcommands/hex"
)

func TestHex(t *testing.T) {
	t.Parallel()
	tests := []HexTest{
		{Args: []string{"decode", "181926"}, Output: "24 25 38\n"},
		{Args: []string{"decode", "#8AADF4", "000000"}, Output: "138 173 244\n0 0 0\n"},
		{Args: []string{"encode", "15", "0", "255"}, Output: "0f00ff\n"},

		{Args: nil, Err: "expected decode or encode"},
		{Args: []string{"decode"}, Err: "decode expects at least one colour"},
		{Args: []string{"decode", "fff"}, Err: `colour format error caused by: Wrong number of digits for colour "fff", should be 6 hex digits`},
		{Args: []string{"encode", "1", "2"}, Err: "encode expects 3 channels (red green blue), got 2"},
		{Args: []string{"encode", "256", "0", "-1"}, Err: "red component \"256\" should be within 0 and 255\nblue component \"-1\" should be within 0 and 255"},
		{Args: []string{"mix"}, Err: `Unknown hex command "mix", expected decode or encode`},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.Args, " "), tc.Run)
	}
}

type HexTest struct {
	Args   []string
	Output string
	Err    string
}

func (tc HexTest) Run(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	err := hex.Hex(tc.Args, &b)
	if tc.Err == "" {
		assert.NilError(t, err)
	} else {
		assert.Error(t, err, tc.Err)
	}
	assert.Equal(t, b.String(), tc.Output)
}

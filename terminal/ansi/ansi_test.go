// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi_test

import (
	"testing"

	"github.com/Lexer747/oceania-theme/terminal/ansi"
	"gotest.tools/v3/assert"
)

func TestTrueColour(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ansi.TrueColour("x", 0x18, 0x19, 0x26), "\033[38;2;24;25;38mx\033[0m")
	assert.Equal(t, ansi.TrueColourBackground("  ", 255, 0, 7), "\033[48;2;255;0;7m  \033[0m")
	assert.Equal(t, ansi.Bold("b"), "\033[1mb\033[0m")
}

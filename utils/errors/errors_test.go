// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package errors_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/Lexer747/oceania-theme/utils/errors"
	"gotest.tools/v3/assert"
)

var errSentinel = errors.New("sentinel")

func TestWrap(t *testing.T) {
	t.Parallel()
	assert.NilError(t, errors.Wrap(nil, "nothing"))
	assert.NilError(t, errors.WrapErr(nil, errSentinel))

	err := errors.Wrapf(os.ErrNotExist, "reading %q", "theme.toml")
	assert.Error(t, err, `reading "theme.toml" caused by: file does not exist`)
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, fmt.Sprintf("%+v", err), `reading "theme.toml" caused by: file does not exist`)
}

func TestWrapErr(t *testing.T) {
	t.Parallel()
	err := errors.WrapErrf(errSentinel, "field %s", "red")
	assert.Error(t, err, "sentinel caused by: field red")
	assert.Assert(t, errors.Is(err, errSentinel))

	outer := errors.Wrap(err, "loading")
	assert.Assert(t, errors.Is(outer, errSentinel))
	assert.Assert(t, !errors.Is(outer, os.ErrNotExist))
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/terminal/ansi"
	"github.com/Lexer747/oceania-theme/utils/application"
)

type Config struct {
	*application.BuildInfo
	*tabflags.FlagSet
}

func GetFlags(info *application.BuildInfo) *Config {
	f := tabflags.NewAutoCompleteFlagSet(flag.NewFlagSet("version", flag.ContinueOnError), tabflags.AutoComplete{})
	ret := &Config{
		BuildInfo: info,
		FlagSet:   f,
	}
	return ret
}

func RunVersion(c *Config, w io.Writer) {
	versionColour := ansi.Cyan
	detailsColour := ansi.Gray
	const header = "oceania-theme version: %s\n"
	if c.BuildInfo == nil {
		fmt.Fprintf(w,
			header,
			versionColour("local build"),
		)
		return
	}
	var b strings.Builder
	const details = "Details - Commit:%s Branch:%q GoVersion:%q BuildTimestamp:%s\n"
	fmt.Fprintf(&b, header, versionColour(c.Tag()))
	b.WriteString(detailsColour(
		fmt.Sprintf(details,
			c.Commit(),
			c.Branch(),
			c.GoVersion(),
			c.BuildTimestamp(),
		),
	))
	fmt.Fprint(w, b.String())
}

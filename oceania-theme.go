// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/oceania-theme/cmd/subcommands/hex"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/selecttheme"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/show"
	"github.com/Lexer747/oceania-theme/cmd/subcommands/version"
	tabcompletion "github.com/Lexer747/oceania-theme/cmd/tab_completion"
	"github.com/Lexer747/oceania-theme/terminal/ansi"
	"github.com/Lexer747/oceania-theme/utils/application"
	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/exit"
)

// Set at build time with -ldflags "-X main.COMMIT=..."
//
//nolint:staticcheck
var (
	COMMIT     string
	GO_VERSION string
	BRANCH     string
	TIMESTAMP  string
	TAG        string
)

var programName = ansi.Green("oceania-theme")

const showString = "show"
const hexString = "hex"
const selectString = "select"
const versionString = "version"

type subcommand struct {
	subcommandName string
	description    string
}

var commandsUsage = []subcommand{
	{
		subcommandName: ansi.Red(showString),
		description: programName + " " + ansi.Red(showString) +
			" prints every colour role of the active theme, this is the default when no subcommand is given.",
	},
	{
		subcommandName: ansi.Red(hexString),
		description: programName + " " + ansi.Red(hexString) +
			" [decode RRGGBB | encode R G B]\n    converts between theme.toml colours and RGB channels.",
	},
	{
		subcommandName: ansi.Red(selectString),
		description: programName + " " + ansi.Red(selectString) +
			" [light|dark|custom]\n    saves which theme Oceania applications should use.",
	},
	{
		subcommandName: ansi.Red(versionString),
		description:    programName + " " + ansi.Red(versionString) + " prints the build information.",
	},
}

var mainDescription = programName + " reads the Oceania palette (theme.toml) and theme selection (cfg.toml)" +
	" from $XDG_CONFIG_HOME/Oceania or $HOME/.config/Oceania."

func main() {
	info := application.MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case tabcompletion.AutoCompleteString:
			base := tabcompletion.Command{Cmd: "oceania-theme", Fs: show.GetFlags(info).FlagSet}
			tabcompletion.Run(os.Args, base, []tabcompletion.Command{
				{Cmd: showString, Fs: show.GetFlags(info).FlagSet},
				{Cmd: hexString, Fs: hex.GetFlags(info).FlagSet},
				{Cmd: selectString, Fs: selecttheme.GetFlags(info).FlagSet},
				{Cmd: versionString, Fs: version.GetFlags(info).FlagSet},
			})
			exit.Success()
		case showString:
			s := show.GetFlags(info)
			FlagParseError(s.Parse(os.Args[2:]))
			show.RunShow(s)
			exit.Success()
		case hexString:
			h := hex.GetFlags(info)
			FlagParseError(h.Parse(os.Args[2:]))
			hex.RunHex(h)
			exit.Success()
		case selectString:
			st := selecttheme.GetFlags(info)
			FlagParseError(st.Parse(os.Args[2:]))
			selecttheme.RunSelect(st)
			exit.Success()
		case versionString:
			v := version.GetFlags(info)
			FlagParseError(v.Parse(os.Args[2:]))
			version.RunVersion(v, os.Stdout)
			exit.Success()
		default:
			// fallthrough
		}
	}
	s := show.GetFlags(info)
	s.Usage = func() {
		fmt.Fprint(s.Output(), "  "+mainDescription+"\n\n")
		for _, cmd := range commandsUsage {
			fmt.Fprint(s.Output(), "  "+cmd.subcommandName+"\n")
			fmt.Fprint(s.Output(), "      "+cmd.description+"\n")
		}
		fmt.Fprintf(s.Output(), "call any of the above subcommands with --help for extra details on those commands.\n")
		fmt.Fprintf(s.Output(), "tab completion for bash is in cmd/tab_completion/oceania-theme.\n")
		fmt.Fprint(s.Output(), "\n"+programName+" arguments:\n")
		s.PrintDefaults()
	}
	FlagParseError(s.Parse(os.Args[1:]))
	show.RunShow(s)
	exit.Success()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}

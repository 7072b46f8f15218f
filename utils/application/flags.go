// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"log/slog"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/utils/exit"
)

// SharedFlags are the flags every subcommand accepts.
type SharedFlags struct {
	logFile *string
	verbose *bool
}

func NewSharedFlags(f *tabflags.FlagSet) *SharedFlags {
	return &SharedFlags{
		logFile: f.String("l", "", "write debug logs to `file`. (default no logs written)",
			tabflags.AutoComplete{WantsFile: true, FileExt: ".log"}),
		verbose: f.Bool("v", false, "write info logs to stderr"),
	}
}

func (sf *SharedFlags) InitLogging(info *BuildInfo) (toDefer func()) {
	return InitLogging(*sf.logFile, *sf.verbose, info)
}

// RunLogged calls [run] with logging set up, the log file is closed before the process exits on an error
// which is reported as [msg].
func (sf *SharedFlags) RunLogged(info *BuildInfo, msg string, run func() error) {
	exit.OnErrorMsg(sf.runLogged(info, msg, run), msg)
}

func (sf *SharedFlags) runLogged(info *BuildInfo, msg string, run func() error) error {
	closeLogFile := sf.InitLogging(info)
	defer closeLogFile()
	err := run()
	if err != nil {
		slog.Error(msg, "err", err)
	}
	return err
}

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import (
	"fmt"
	"log/slog"
	"os"
)

// OnError should be called when there is no way from the program to continue functioning normally, if err is
// not nil the program will exit and print the error which caused the issue.
func OnError(err error) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(errCode)
	}
}

// OnErrorMsg is like [OnError] but has a custom message when err is not nil.
func OnErrorMsg(err error, msg string) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error(), "msg", msg)
		fmt.Fprintf(os.Stderr, msg+": %s\n", err.Error())
		os.Exit(errCode)
	}
}

// Usage prints [msg] to stderr and exits with the usage code, for bad command line input.
func Usage(msg string) {
	slog.Error(fmt.Sprintf("Exiting with %d", usageCode), "msg", msg)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(usageCode)
}

// Success is a alias for [os.Exit(0)].
func Success() {
	os.Exit(0)
}

func Silent() {
	os.Exit(1)
}

const errCode = -1
const usageCode = 2

// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"io"
	"log/slog"
	"os"

	"github.com/Lexer747/oceania-theme/utils/check"
)

type BuildInfo struct {
	commit    string
	goVersion string
	branch    string
	timestamp string
	tag       string
}

//nolint:staticcheck
func MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG string) *BuildInfo {
	if COMMIT == "" && GO_VERSION == "" && BRANCH == "" && TIMESTAMP == "" && TAG == "" {
		return nil
	}
	return &BuildInfo{
		commit:    COMMIT,
		goVersion: GO_VERSION,
		branch:    BRANCH,
		timestamp: TIMESTAMP,
		tag:       TAG,
	}
}

func (b *BuildInfo) Commit() string         { return b.commit }
func (b *BuildInfo) GoVersion() string      { return b.goVersion }
func (b *BuildInfo) Branch() string         { return b.branch }
func (b *BuildInfo) BuildTimestamp() string { return b.timestamp }
func (b *BuildInfo) Tag() string            { return b.tag }

// InitLogging installs the default [slog] logger. With a [file] everything from debug up is written there,
// with [verbose] info and above goes to stderr, otherwise only errors are kept and they are discarded.
func InitLogging(file string, verbose bool, info *BuildInfo) (toDefer func()) {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create Log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(withBuildInfo(slog.New(h), info))
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			slog.SetDefault(slog.New(slog.DiscardHandler))
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
		slog.SetDefault(withBuildInfo(slog.New(h), info))
		return func() {}
	}
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

func withBuildInfo(logger *slog.Logger, info *BuildInfo) *slog.Logger {
	if info == nil {
		return logger
	}
	return logger.With(
		"COMMIT", info.commit,
		"BRANCH", info.branch,
		"GO_VERSION", info.goVersion,
		"BUILD_TIMESTAMP", info.timestamp,
		"TAG", info.tag,
	)
}

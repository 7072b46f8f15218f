// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package hex

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Lexer747/oceania-theme/cmd/tab_completion/tabflags"
	"github.com/Lexer747/oceania-theme/colour"
	"github.com/Lexer747/oceania-theme/utils/application"
	"github.com/Lexer747/oceania-theme/utils/check"
	"github.com/Lexer747/oceania-theme/utils/errors"
	"github.com/Lexer747/oceania-theme/utils/exit"
)

type Config struct {
	*application.BuildInfo
	*application.SharedFlags
	*tabflags.FlagSet
}

func GetFlags(info *application.BuildInfo) *Config {
	f := tabflags.NewAutoCompleteFlagSet(flag.NewFlagSet("hex", flag.ContinueOnError),
		tabflags.AutoComplete{Choices: []string{decode, encode}})
	ret := &Config{
		BuildInfo:   info,
		SharedFlags: application.NewSharedFlags(f),
		FlagSet:     f,
	}
	f.Usage = func() {
		fmt.Fprint(f.Output(), "Usage of hex: converts colours between theme.toml hex and RGB channels\n"+
			"\thex decode RRGGBB [RRGGBB...]\n"+
			"\thex encode R G B\n\n")
		f.PrintDefaults()
	}
	return ret
}

func RunHex(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	if c.NArg() == 0 {
		c.Usage()
		exit.Usage("hex expects decode or encode")
	}
	c.RunLogged(c.BuildInfo, "Failed to convert colour", func() error {
		return Hex(c.Args(), os.Stdout)
	})
}

// Hex runs "decode" or "encode" given as the first of [args], writing one result per line to [w].
func Hex(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.Errorf("expected decode or encode")
	}
	switch args[0] {
	case decode:
		if len(args) == 1 {
			return errors.Errorf("decode expects at least one colour")
		}
		for _, arg := range args[1:] {
			// a leading '#' is only tolerated here, theme files must not have one.
			c, err := colour.Decode(strings.TrimPrefix(arg, "#"))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d %d %d\n", c.R, c.G, c.B)
		}
		return nil
	case encode:
		c, err := parseChannels(args[1:])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, colour.Encode(c))
		return nil
	}
	return errors.Errorf("Unknown hex command %q, expected decode or encode", args[0])
}

const (
	decode = "decode"
	encode = "encode"
)

func parseChannels(args []string) (colour.RGB, error) {
	if len(args) != 3 {
		return colour.RGB{}, errors.Errorf("encode expects 3 channels (red green blue), got %d", len(args))
	}
	names := [3]string{"red", "green", "blue"}
	var channels [3]uint8
	errs := []error{}
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			errs = append(errs, errors.Errorf("%s component %q should be within 0 and 255", names[i], arg))
			continue
		}
		channels[i] = uint8(v)
	}
	if err := errors.Join(errs...); err != nil {
		return colour.RGB{}, err
	}
	return colour.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

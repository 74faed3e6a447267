// Setlist Core
// Copyright (c) 2026 The Setlist Core Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Setlist Core.
//
// Setlist Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Setlist Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Setlist Core.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/setlistd/setlist-core/pkg/cli"
	"github.com/setlistd/setlist-core/pkg/config"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	if *flags.Version {
		_, _ = fmt.Printf("Setlist v%s\n", config.AppVersion)
		return nil
	}

	var logWriters []io.Writer
	if *flags.Debug {
		logWriters = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	}

	fs := afero.NewOsFs()
	cfg, err := flags.Setup(fs, config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return flags.Run(ctx, cfg, fs, os.Stdin, os.Stdout)
}

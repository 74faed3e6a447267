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

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/catalog"
	"github.com/setlistd/setlist-core/pkg/config"
	"github.com/setlistd/setlist-core/pkg/helpers"
	"github.com/setlistd/setlist-core/pkg/matcher"
	"github.com/setlistd/setlist-core/pkg/parser"
	"github.com/spf13/afero"
)

const (
	ModeTimeline = "timeline"
	ModeManual   = "manual"
)

var ErrUnknownMode = errors.New("unknown input mode")

type Flags struct {
	ConfigDir *string
	LogDir    *string
	Catalog   *string
	Mode      *string
	Input     *string
	Title     *string
	URL       *string
	Workers   *int
	Debug     *bool
	Version   *bool
}

// SetupFlags defines the setlist flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		ConfigDir: fs.String(
			"config-dir",
			"",
			"directory holding "+config.CfgFile+" (default: user config dir)",
		),
		LogDir: fs.String(
			"log-dir",
			"",
			"directory for "+config.LogFile+" (default: user cache dir)",
		),
		Catalog: fs.String(
			"catalog",
			"",
			"catalog snapshot file (.csv, .json, .yaml, .toml)",
		),
		Mode: fs.String(
			"mode",
			ModeTimeline,
			"input kind: timeline (comment HTML) or manual (timestamp list)",
		),
		Input: fs.String(
			"input",
			"",
			"read input from file instead of stdin",
		),
		Title: fs.String(
			"title",
			"",
			"video title, used for the broadcast date",
		),
		URL: fs.String(
			"url",
			"",
			"video URL recorded on manual mentions",
		),
		Workers: fs.Int(
			"workers",
			0,
			"parallel matching workers (default: from config)",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

// ParseFlags parses args into a new flag set. Usage and parse errors are
// written to output.
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	f := SetupFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	return f, nil
}

func userDir(lookup func() (string, error)) string {
	dir, err := lookup()
	if err != nil {
		return filepath.Join(os.TempDir(), config.AppName)
	}
	return filepath.Join(dir, config.AppName)
}

// Setup initializes logging and loads the user config.
//
//nolint:gocritic // config struct copied for immutability
func (f *Flags) Setup(
	fs afero.Fs,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	logDir := *f.LogDir
	if logDir == "" {
		logDir = userDir(os.UserCacheDir)
	}
	if err := helpers.InitLogging(logDir, *f.Debug, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfgDir := *f.ConfigDir
	if cfgDir == "" {
		cfgDir = userDir(os.UserConfigDir)
	}
	cfg, err := config.NewConfig(fs, cfgDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() || *f.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return cfg, nil
}

func policyFor(cfg *config.Instance, mode string) (matcher.Policy, error) {
	switch mode {
	case ModeTimeline:
		return cfg.TimelinePolicy(), nil
	case ModeManual:
		return cfg.ManualPolicy(), nil
	default:
		return matcher.Policy{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func readInput(fs afero.Fs, path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// Run parses the input, resolves every mention against the catalog snapshot
// and writes the resolutions to stdout as JSON.
func (f *Flags) Run(
	ctx context.Context,
	cfg *config.Instance,
	fs afero.Fs,
	stdin io.Reader,
	stdout io.Writer,
) error {
	mode := strings.ToLower(strings.TrimSpace(*f.Mode))
	policy, err := policyFor(cfg, mode)
	if err != nil {
		return err
	}

	if *f.Catalog == "" {
		return errors.New("catalog flag requires a value")
	}
	snap, err := catalog.Load(fs, *f.Catalog)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	input, err := readInput(fs, *f.Input, stdin)
	if err != nil {
		return err
	}

	var mentions []parser.Mention
	if mode == ModeManual {
		mentions = parser.ParseManualTimestamps(input, *f.URL, *f.Title)
	} else {
		mentions = parser.ParseTimelineComment(input, *f.Title)
	}
	log.Info().Str("mode", mode).Int("mentions", len(mentions)).Msg("parsed input")

	workers := cfg.Workers()
	if *f.Workers > 0 {
		workers = *f.Workers
	}

	results, err := matcher.ResolveAll(ctx, mentions, snap, policy, workers)
	if err != nil {
		return fmt.Errorf("error resolving mentions: %w", err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("error encoding results: %w", err)
	}
	return nil
}

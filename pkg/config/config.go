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

// Package config loads the setlist TOML configuration: matching policies per
// workflow, batch parallelism and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/matcher"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "SETLIST_CFG"
)

// ErrSchemaMismatch is returned by Load when the file was written for a
// different config schema.
var ErrSchemaMismatch = errors.New("config schema version mismatch")

type Values struct {
	Matching     Matching `toml:"matching"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

type Matching struct {
	Manual   PolicyValues `toml:"manual"`
	Timeline PolicyValues `toml:"timeline"`
	// Workers caps parallel resolution. Zero means one per CPU.
	Workers int `toml:"workers" validate:"gte=0"`
}

type PolicyValues struct {
	TitleWeight     float64 `toml:"title_weight" validate:"gte=0,lte=1"`
	ArtistWeight    float64 `toml:"artist_weight" validate:"gte=0,lte=1"`
	AcceptThreshold float64 `toml:"accept_threshold" validate:"gte=0,lte=1"`
}

func policyValues(p matcher.Policy) PolicyValues {
	return PolicyValues{
		TitleWeight:     p.TitleWeight,
		ArtistWeight:    p.ArtistWeight,
		AcceptThreshold: p.AcceptThreshold,
	}
}

func (v PolicyValues) policy(name string) matcher.Policy {
	return matcher.Policy{
		Name:            name,
		TitleWeight:     v.TitleWeight,
		ArtistWeight:    v.ArtistWeight,
		AcceptThreshold: v.AcceptThreshold,
	}
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Matching: Matching{
		Manual:   policyValues(matcher.ManualEntryPolicy),
		Timeline: policyValues(matcher.TimelinePolicy),
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// NewConfig opens the config file in configDir, or the file named by
// SETLIST_CFG, writing defaults to it first if it does not exist.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Str("path", cfgPath).Msg("saving new default config to disk")

		if err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load rereads the config file. Values missing from the file keep their
// defaults. On error the previously loaded values stay in effect.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, newVals.ConfigSchema, SchemaVersion)
	}

	if err := checkValues(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func checkValues(v *Values) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := v.Matching.Manual.policy(matcher.ManualEntryPolicy.Name).Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := v.Matching.Timeline.policy(matcher.TimelinePolicy.Name).Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Instance) Workers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.Workers
}

func (c *Instance) SetWorkers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Matching.Workers = max(0, n)
}

// ManualPolicy returns the policy for operator-typed timestamp lists.
func (c *Instance) ManualPolicy() matcher.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.Manual.policy(matcher.ManualEntryPolicy.Name)
}

// TimelinePolicy returns the policy for scraped timeline comments.
func (c *Instance) TimelinePolicy() matcher.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.Timeline.policy(matcher.TimelinePolicy.Name)
}

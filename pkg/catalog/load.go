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

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for snapshot files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// TagSeparator splits the search_tags column of CSV snapshots.
const TagSeparator = "|"

// snapshotFile is the document shape shared by the JSON, YAML and TOML
// snapshot formats.
type snapshotFile struct {
	Songs []Entry `json:"songs" yaml:"songs" toml:"songs"`
}

// csvRow is one line of a CSV snapshot.
type csvRow struct {
	ID          string `csv:"id"`
	Title       string `csv:"title"`
	Artist      string `csv:"artist"`
	TitleAlias  string `csv:"title_alias"`
	ArtistAlias string `csv:"artist_alias"`
	SearchTags  string `csv:"search_tags"`
}

// Load reads a snapshot file exported from the catalog store. The format is
// picked from the extension: .csv, .json, .yaml, .yml or .toml.
func Load(fs afero.Fs, path string) (*Snapshot, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	entries, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	if err := Validate(entries); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("entries", len(entries)).Msg("loaded catalog snapshot")
	return NewSnapshot(entries), nil
}

// Decode parses snapshot data in the given format (a file extension, with or
// without the leading dot). Field values are trimmed and empty tags dropped.
func Decode(format string, data []byte) ([]Entry, error) {
	var entries []Entry

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "csv":
		var rows []csvRow
		if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		entries = make([]Entry, len(rows))
		for i, r := range rows {
			entries[i] = Entry{
				ID:          r.ID,
				Title:       r.Title,
				Artist:      r.Artist,
				TitleAlias:  r.TitleAlias,
				ArtistAlias: r.ArtistAlias,
				SearchTags:  strings.Split(r.SearchTags, TagSeparator),
			}
		}
	case "json":
		var f snapshotFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		entries = f.Songs
	case "yaml", "yml":
		var f snapshotFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		entries = f.Songs
	case "toml":
		var f snapshotFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		entries = f.Songs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	for i := range entries {
		tidy(&entries[i])
	}
	return entries, nil
}

func tidy(e *Entry) {
	e.ID = strings.TrimSpace(e.ID)
	e.Title = strings.TrimSpace(e.Title)
	e.Artist = strings.TrimSpace(e.Artist)
	e.TitleAlias = strings.TrimSpace(e.TitleAlias)
	e.ArtistAlias = strings.TrimSpace(e.ArtistAlias)

	tags := e.SearchTags[:0]
	for _, tag := range e.SearchTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	e.SearchTags = tags
}

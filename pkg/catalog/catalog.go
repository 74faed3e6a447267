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

// Package catalog holds the read-only song catalog snapshot that mentions
// are matched against.
//
// The catalog store itself lives elsewhere; callers build a Snapshot from
// whatever they fetched and hand it to the matcher for the duration of a
// batch.
package catalog

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Entry is one canonical song.
type Entry struct {
	ID          string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" toml:"title" validate:"required"`
	Artist      string   `json:"artist" yaml:"artist" toml:"artist"`
	TitleAlias  string   `json:"titleAlias,omitempty" yaml:"title_alias,omitempty" toml:"title_alias,omitempty"`
	ArtistAlias string   `json:"artistAlias,omitempty" yaml:"artist_alias,omitempty" toml:"artist_alias,omitempty"`
	SearchTags  []string `json:"searchTags,omitempty" yaml:"search_tags,omitempty" toml:"search_tags,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEntry reports whether e satisfies the catalog contract: an id and a
// title are required.
func ValidateEntry(e *Entry) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid catalog entry %q: %w", e.ID, err)
	}
	return nil
}

// Snapshot is an immutable view of the catalog. It is safe for concurrent
// use by any number of readers.
type Snapshot struct {
	entries []Entry
}

// NewSnapshot copies entries into a new Snapshot, so later changes to the
// caller's slice are not seen by the matcher.
//
// An entry missing its id or title is a broken collaborator, not bad input,
// and NewSnapshot panics on it. Use Validate first when entries come from
// users.
func NewSnapshot(entries []Entry) *Snapshot {
	copied := make([]Entry, len(entries))
	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			panic(fmt.Sprintf("catalog entry %d: %v", i, err))
		}
		copied[i] = entries[i]
		copied[i].SearchTags = slices.Clone(entries[i].SearchTags)
	}
	return &Snapshot{entries: copied}
}

// Len returns the number of entries. A nil Snapshot is empty.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns the i-th entry in catalog order. The returned SearchTags slice
// is shared with the snapshot and must not be modified.
func (s *Snapshot) At(i int) Entry {
	return s.entries[i]
}

// Validate checks every entry against the catalog contract and rejects
// duplicate ids.
func Validate(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if prev, ok := seen[entries[i].ID]; ok {
			return fmt.Errorf("entry %d: duplicate id %q (first seen at entry %d)", i, entries[i].ID, prev)
		}
		seen[entries[i].ID] = i
	}
	return nil
}

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

// Package parser extracts timestamped song mentions from viewer comments and
// from operator-typed timestamp lists.
//
// Parsing is lenient: anything that does not look like a mention is logged at
// debug level and skipped, never returned as an error.
package parser

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/setlistd/setlist-core/pkg/airdate"
)

// UnknownArtist is the artist recorded when song text has no artist/title
// separator. Mentions carrying it are never relevant.
const UnknownArtist = "unknown"

// Mention is one song occurrence inside a long-form video.
//
// EndSeconds, when set, is strictly greater than StartSeconds, and
// DurationSeconds is set exactly when EndSeconds is.
type Mention struct {
	EndSeconds      *int         `json:"endSeconds"`
	DurationSeconds *int         `json:"durationSeconds"`
	Broadcast       airdate.Info `json:"broadcast"`
	Artist          string       `json:"artist"`
	Title           string       `json:"title"`
	SourceURL       string       `json:"sourceUrl"`
	SourceText      string       `json:"sourceText"`
	StartSeconds    int          `json:"startSeconds"`
	IsRelevant      bool         `json:"isRelevant"`
}

// ClipID returns a stable identifier for the clip this mention would become,
// derived from the source URL and start offset. Callers persisting clips can
// use it to make re-runs idempotent.
func (m *Mention) ClipID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(m.SourceURL+"#t="+strconv.Itoa(m.StartSeconds)))
}

// linkMentions sorts mentions by start time and derives each end time from the
// following mention's start. The last mention, and any mention followed by
// one starting at the same second, is left open-ended.
func linkMentions(mentions []Mention) {
	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].StartSeconds < mentions[j].StartSeconds
	})

	for i := range mentions {
		mentions[i].EndSeconds = nil
		mentions[i].DurationSeconds = nil
		if i+1 >= len(mentions) {
			continue
		}
		next := mentions[i+1].StartSeconds
		if next <= mentions[i].StartSeconds {
			continue
		}
		end := next
		duration := end - mentions[i].StartSeconds
		mentions[i].EndSeconds = &end
		mentions[i].DurationSeconds = &duration
	}
}

// stamp applies the shared source URL and broadcast date to every mention.
func stamp(mentions []Mention, sourceURL string, broadcast airdate.Info) {
	for i := range mentions {
		mentions[i].SourceURL = sourceURL
		mentions[i].Broadcast = broadcast
	}
}

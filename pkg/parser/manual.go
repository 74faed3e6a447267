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

package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/airdate"
)

// manualLineRe matches "TIME rest", where TIME is M:SS, MM:SS or H:MM:SS and
// may be wrapped in brackets or parentheses.
var manualLineRe = regexp.MustCompile(`^\s*[\[(]?(\d{1,2}(?::\d{2}){1,2})[\])]?(?:\s+|$)(.*)$`)

// ParseManualTimestamps parses operator-typed lines of the form
// "9:57 Artist - Title". Lines without a time token or without an
// artist/title separator are dropped.
//
// videoURL and videoTitle are optional; when given, every mention carries the
// URL (offset removed) and the broadcast date found in the title.
func ParseManualTimestamps(text, videoURL, videoTitle string) []Mention {
	var mentions []Mention
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := manualLineRe.FindStringSubmatch(line)
		if m == nil {
			log.Debug().Int("line", i+1).Str("text", line).Msg("skipping line without a time token")
			continue
		}

		rest := trimLeadingSeparator(collapseSpace(m[2]))
		artist, title, ok := splitWith(rest, manualSeparators)
		if !ok {
			log.Debug().Int("line", i+1).Str("text", line).Msg("skipping line without artist/title separator")
			continue
		}

		mentions = append(mentions, Mention{
			Artist:       artist,
			Title:        title,
			StartSeconds: ParseTimeString(m[1]),
			SourceText:   rest,
			IsRelevant:   true,
		})
	}

	if len(mentions) == 0 {
		return nil
	}

	linkMentions(mentions)

	var broadcast airdate.Info
	if videoTitle != "" {
		broadcast = airdate.Extract(videoTitle)
	}
	sourceURL := ""
	if videoURL != "" {
		sourceURL = StripOffset(strings.TrimSpace(videoURL))
	}
	stamp(mentions, sourceURL, broadcast)

	return mentions
}

// trimLeadingSeparator drops a dash typed between the time token and the
// artist, as in "9:57 - Artist - Title".
func trimLeadingSeparator(s string) string {
	for _, dash := range []string{"-", "–", "—"} {
		if rest, ok := strings.CutPrefix(s, dash+" "); ok {
			return rest
		}
	}
	return s
}

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

import "strings"

// songSeparators is the artist/title cascade for comment text, tried in order.
var songSeparators = []string{" - ", " – ", " — ", " | ", " / "}

// manualSeparators is the cascade for operator-typed lines. Spaced forms go
// first so hyphenated names like "Jay-Z - Song" split on the right dash.
var manualSeparators = []string{" - ", " – ", "-", "–"}

// SplitArtistTitle splits song text into artist and title on the first
// separator that leaves both sides non-empty after trimming.
func SplitArtistTitle(text string) (artist, title string, ok bool) {
	return splitWith(text, songSeparators)
}

func splitWith(text string, separators []string) (artist, title string, ok bool) {
	for _, sep := range separators {
		before, after, found := strings.Cut(text, sep)
		if !found {
			continue
		}
		artist = strings.TrimSpace(before)
		title = strings.TrimSpace(after)
		if artist != "" && title != "" {
			return artist, title, true
		}
	}
	return "", "", false
}

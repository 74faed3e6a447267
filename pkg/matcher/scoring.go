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

package matcher

import (
	"github.com/setlistd/setlist-core/pkg/catalog"
	"github.com/setlistd/setlist-core/pkg/textnorm"
)

// fieldScore is the effective similarity of one input field against a
// catalog entry and the signal it came from.
type fieldScore struct {
	source Reason
	score  float64
}

// scoreField returns the best similarity of input against the primary value,
// its alias, and every search tag.
//
// A primary match short-circuits at 1. A tag equal to the input also scores 1.
// A tag that contains or is contained in the input lifts the field to at least
// TagContainmentFloor.
func scoreField(input, primary, alias string, tags []string) fieldScore {
	best := fieldScore{score: textnorm.Similarity(input, primary), source: ReasonFuzzy}
	if best.score == 1 {
		best.source = ReasonExact
		return best
	}

	if s := textnorm.Similarity(input, alias); s > best.score {
		best = fieldScore{score: s, source: ReasonAlias}
	}

	for _, tag := range tags {
		if textnorm.Equal(input, tag) {
			return fieldScore{score: 1, source: ReasonTagExact}
		}

		s, source := textnorm.Similarity(input, tag), ReasonFuzzy
		if textnorm.Contains(input, tag) && s < TagContainmentFloor {
			s, source = TagContainmentFloor, ReasonTagPartial
		}
		if s > best.score {
			best = fieldScore{score: s, source: source}
		}
	}

	return best
}

// Score computes title and artist similarity of a query against one entry.
// Tags are shared by both fields.
func Score(artist, title string, e *catalog.Entry) (titleSim, artistSim float64, reason Reason) {
	t := scoreField(title, e.Title, e.TitleAlias, e.SearchTags)
	a := scoreField(artist, e.Artist, e.ArtistAlias, e.SearchTags)
	return t.score, a.score, combineReasons(t, a)
}

func combineReasons(title, artist fieldScore) Reason {
	switch {
	case title.source == ReasonExact && artist.source == ReasonExact:
		return ReasonExact
	case title.source == ReasonTagExact || artist.source == ReasonTagExact:
		return ReasonTagExact
	case title.source == ReasonExact:
		return ReasonTitleExact
	case title.source == ReasonTagPartial || artist.source == ReasonTagPartial:
		return ReasonTagPartial
	case title.source == ReasonAlias || artist.source == ReasonAlias:
		return ReasonAlias
	default:
		return ReasonFuzzy
	}
}

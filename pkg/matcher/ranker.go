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

// Package matcher scores parsed song mentions against a catalog snapshot and
// decides whether a match can be accepted automatically.
package matcher

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/catalog"
)

// Candidate is a catalog entry that may be the song a mention refers to.
type Candidate struct {
	CatalogID        string  `json:"catalogId"`
	Title            string  `json:"title"`
	Artist           string  `json:"artist"`
	Reason           Reason  `json:"reason"`
	Confidence       float64 `json:"confidence"`
	TitleSimilarity  float64 `json:"titleSimilarity"`
	ArtistSimilarity float64 `json:"artistSimilarity"`
}

// keep applies the candidate filter described on MinTitleSimilarity.
func keep(titleSim, artistSim, confidence float64) bool {
	if titleSim < MinTitleSimilarity {
		return false
	}
	return confidence >= MinConfidence ||
		titleSim >= StrongTitleSimilarity ||
		(artistSim >= StrongArtistSimilarity && titleSim >= WeakTitleSimilarity)
}

// RankCandidates scores every catalog entry against the query and returns at
// most MaxCandidates survivors of the filter, sorted by title similarity and
// then confidence, both descending. Ties keep catalog order.
func RankCandidates(artist, title string, snap *catalog.Snapshot, p Policy) []Candidate {
	var candidates []Candidate

	for i := range snap.Len() {
		e := snap.At(i)

		t := scoreField(title, e.Title, e.TitleAlias, e.SearchTags)
		if t.score < MinTitleSimilarity {
			continue
		}
		a := scoreField(artist, e.Artist, e.ArtistAlias, e.SearchTags)

		confidence := p.Confidence(t.score, a.score)
		if !keep(t.score, a.score, confidence) {
			continue
		}

		candidates = append(candidates, Candidate{
			CatalogID:        e.ID,
			Title:            e.Title,
			Artist:           e.Artist,
			Reason:           combineReasons(t, a),
			Confidence:       confidence,
			TitleSimilarity:  t.score,
			ArtistSimilarity: a.score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TitleSimilarity != candidates[j].TitleSimilarity {
			return candidates[i].TitleSimilarity > candidates[j].TitleSimilarity
		}
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	if len(candidates) > 0 {
		log.Debug().
			Str("artist", artist).
			Str("title", title).
			Str("policy", p.Name).
			Str("top", candidates[0].CatalogID).
			Float64("confidence", candidates[0].Confidence).
			Int("count", len(candidates)).
			Msg("ranked catalog candidates")
	}

	return candidates
}

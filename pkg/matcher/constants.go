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

const (
	// MaxCandidates caps the ranked list shown for manual review.
	MaxCandidates = 5

	// Candidate filter. An entry is kept only when its title similarity
	// reaches MinTitleSimilarity and at least one of the following holds:
	// confidence reaches MinConfidence, title similarity reaches
	// StrongTitleSimilarity, or artist similarity reaches StrongArtistSimilarity
	// with title similarity at least WeakTitleSimilarity.
	MinTitleSimilarity     = 0.6
	MinConfidence          = 0.7
	StrongTitleSimilarity  = 0.8
	StrongArtistSimilarity = 0.9
	WeakTitleSimilarity    = 0.3

	// TagContainmentFloor is the lowest field similarity given to a search tag
	// that contains, or is contained in, the input.
	TagContainmentFloor = 0.8
)

// Reason labels which signal produced a candidate's score.
type Reason string

const (
	// ReasonExact: title and artist both equal the entry's after normalization.
	ReasonExact Reason = "exact"
	// ReasonTagExact: a search tag equals the input title or artist.
	ReasonTagExact Reason = "tag_exact"
	// ReasonTitleExact: the title equals the entry's title, the artist does not.
	ReasonTitleExact Reason = "title_exact"
	// ReasonTagPartial: a search tag contains or is contained in the input.
	ReasonTagPartial Reason = "tag_partial"
	// ReasonAlias: the best field score came from a title or artist alias.
	ReasonAlias Reason = "alias"
	// ReasonFuzzy: edit-distance similarity on the primary fields.
	ReasonFuzzy Reason = "fuzzy"
)

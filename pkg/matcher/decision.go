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
	"fmt"

	"github.com/rs/zerolog/log"
)

// DecisionKind is the outcome of matching one mention.
type DecisionKind int

const (
	// NoMatch means no catalog entry survived the candidate filter. The clip
	// is excluded from automatic matching.
	NoMatch DecisionKind = iota
	// AutoMatched means the top candidate cleared the policy's acceptance
	// threshold and can be linked without review.
	AutoMatched
	// NeedsReview means candidates exist but none is confident enough; they
	// go to the manual review queue.
	NeedsReview
)

func (k DecisionKind) String() string {
	switch k {
	case NoMatch:
		return "no_match"
	case AutoMatched:
		return "auto_matched"
	case NeedsReview:
		return "needs_review"
	default:
		return fmt.Sprintf("DecisionKind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its label.
func (k DecisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Decision is exactly one of: NoMatch; AutoMatched with Match set; or
// NeedsReview with one to MaxCandidates Candidates.
type Decision struct {
	Match      *Candidate   `json:"match,omitempty"`
	Candidates []Candidate  `json:"candidates,omitempty"`
	Kind       DecisionKind `json:"kind"`
}

// Decide applies the policy to a ranked candidate list as returned by
// RankCandidates.
func Decide(candidates []Candidate, p Policy) Decision {
	if len(candidates) == 0 {
		return Decision{Kind: NoMatch}
	}

	top := candidates[0]
	if top.Confidence >= p.AcceptThreshold {
		log.Debug().
			Str("policy", p.Name).
			Str("catalog_id", top.CatalogID).
			Float64("confidence", top.Confidence).
			Msg("auto-matched")
		return Decision{Kind: AutoMatched, Match: &top}
	}

	review := candidates
	if len(review) > MaxCandidates {
		review = review[:MaxCandidates]
	}
	return Decision{Kind: NeedsReview, Candidates: review}
}

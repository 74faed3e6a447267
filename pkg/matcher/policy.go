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
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPolicy is returned by Policy.Validate.
var ErrInvalidPolicy = errors.New("invalid match policy")

// Policy weights title and artist similarity into a confidence and decides
// when a confidence is high enough to accept without review.
//
// The two workflows evolved separate policies. They are kept apart on
// purpose until product decides whether they should converge.
type Policy struct {
	Name            string  `json:"name"`
	TitleWeight     float64 `json:"titleWeight"`
	ArtistWeight    float64 `json:"artistWeight"`
	AcceptThreshold float64 `json:"acceptThreshold"`
}

// ManualEntryPolicy applies to operator-typed timestamp lists.
var ManualEntryPolicy = Policy{
	Name:            "manual",
	TitleWeight:     0.7,
	ArtistWeight:    0.3,
	AcceptThreshold: 0.95,
}

// TimelinePolicy applies to timestamp comments scraped from viewers.
var TimelinePolicy = Policy{
	Name:            "timeline",
	TitleWeight:     0.6,
	ArtistWeight:    0.4,
	AcceptThreshold: 0.8,
}

// Confidence combines field similarities into a score clamped to [0,1].
func (p Policy) Confidence(titleSim, artistSim float64) float64 {
	c := p.TitleWeight*titleSim + p.ArtistWeight*artistSim
	return math.Min(1, math.Max(0, c))
}

// Validate checks that weights are non-negative and sum to 1 and that the
// acceptance threshold lies in [0,1].
func (p Policy) Validate() error {
	if p.TitleWeight < 0 || p.ArtistWeight < 0 {
		return fmt.Errorf("%w %q: negative weight", ErrInvalidPolicy, p.Name)
	}
	if math.Abs(p.TitleWeight+p.ArtistWeight-1) > 1e-9 {
		return fmt.Errorf("%w %q: weights sum to %g, want 1",
			ErrInvalidPolicy, p.Name, p.TitleWeight+p.ArtistWeight)
	}
	if p.AcceptThreshold < 0 || p.AcceptThreshold > 1 {
		return fmt.Errorf("%w %q: accept threshold %g outside [0,1]",
			ErrInvalidPolicy, p.Name, p.AcceptThreshold)
	}
	return nil
}

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
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/catalog"
	"github.com/setlistd/setlist-core/pkg/parser"
	"golang.org/x/sync/errgroup"
)

// Resolution is the full matching result for one mention. Review candidates,
// when there are any, are carried by Decision.
type Resolution struct {
	ClipID   string         `json:"clipId"`
	Mention  parser.Mention `json:"mention"`
	Decision Decision       `json:"decision"`
}

// queryArtist drops the unknown-artist sentinel so it is not scored as text.
func queryArtist(m *parser.Mention) string {
	if !m.IsRelevant && m.Artist == parser.UnknownArtist {
		return ""
	}
	return m.Artist
}

// Resolve ranks and decides a single mention.
func Resolve(m *parser.Mention, snap *catalog.Snapshot, p Policy) Resolution {
	return Resolution{
		ClipID:   m.ClipID().String(),
		Mention:  *m,
		Decision: Decide(RankCandidates(queryArtist(m), m.Title, snap, p), p),
	}
}

// ResolveAll resolves mentions in parallel on up to workers goroutines
// (GOMAXPROCS when workers <= 0). Results keep input order. The snapshot must
// not change while the batch runs. Cancelling ctx abandons the batch.
func ResolveAll(
	ctx context.Context,
	mentions []parser.Mention,
	snap *catalog.Snapshot,
	p Policy,
	workers int,
) ([]Resolution, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Resolution, len(mentions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range mentions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Resolve(&mentions[i], snap, p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch resolution stopped: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch resolution stopped: %w", err)
	}

	counts := make(map[DecisionKind]int, 3)
	for i := range results {
		counts[results[i].Decision.Kind]++
	}
	log.Info().
		Str("policy", p.Name).
		Int("mentions", len(mentions)).
		Int("auto_matched", counts[AutoMatched]).
		Int("needs_review", counts[NeedsReview]).
		Int("no_match", counts[NoMatch]).
		Msg("resolved mention batch")

	return results, nil
}

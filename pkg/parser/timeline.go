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
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/setlistd/setlist-core/pkg/airdate"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// commentEntities are the only entities comment bodies are decoded for.
var commentEntities = []string{
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#x27;", "'",
	"&#x2F;", "/",
	"&#x60;", "`",
	"&#x3D;", "=",
}

var entityDecoder = strings.NewReplacer(commentEntities...)

// entityGuard escapes every ampersand that does not start one of
// commentEntities, so the HTML parser decodes the known entities exactly once
// and leaves anything else, "&copy;" or a bare "&", as literal text.
var entityGuard = func() *strings.Replacer {
	pairs := make([]string, 0, len(commentEntities)+2)
	for i := 0; i < len(commentEntities); i += 2 {
		pairs = append(pairs, commentEntities[i], commentEntities[i])
	}
	return strings.NewReplacer(append(pairs, "&", "&amp;")...)
}()

// DecodeEntities expands the fixed set of HTML entities used by comment
// bodies and video titles in a single pass.
func DecodeEntities(s string) string {
	return entityDecoder.Replace(s)
}

// ParseTimelineComment extracts mentions from an HTML comment body where each
// song line is a timestamp link followed by "Artist - Title" text.
//
// Only links to a recognized video watch URL carrying a time offset count.
// Every returned mention shares the first mention's URL with the offset
// removed, and the broadcast date found in videoTitle.
func ParseTimelineComment(commentHTML, videoTitle string) []Mention {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(entityGuard.Replace(commentHTML)))
	if err != nil {
		log.Debug().Err(err).Msg("unreadable comment body, skipping")
		return nil
	}

	var mentions []Mention
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		start, ok := timedWatchOffset(href)
		if !ok {
			log.Debug().Str("href", href).Msg("skipping link without a timed watch url")
			return
		}

		text := collapseSpace(trailingText(s.Nodes[0]))
		if text == "" {
			log.Debug().Str("href", href).Msg("skipping timestamp link without song text")
			return
		}

		m := Mention{
			StartSeconds: start,
			SourceURL:    href,
			SourceText:   text,
			IsRelevant:   true,
		}
		if artist, title, ok := SplitArtistTitle(text); ok {
			m.Artist = artist
			m.Title = title
		} else {
			m.Artist = UnknownArtist
			m.Title = text
			m.IsRelevant = false
		}
		mentions = append(mentions, m)
	})

	if len(mentions) == 0 {
		return nil
	}

	linkMentions(mentions)
	stamp(mentions, StripOffset(mentions[0].SourceURL), airdate.Extract(DecodeEntities(videoTitle)))

	log.Debug().
		Int("mentions", len(mentions)).
		Str("source", mentions[0].SourceURL).
		Msg("parsed timeline comment")

	return mentions
}

// trailingText collects the text following an anchor up to the next line
// break, block element or link.
func trailingText(anchor *html.Node) string {
	var sb strings.Builder
	for n := anchor.NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			if before, _, found := strings.Cut(n.Data, "\n"); found {
				_, _ = sb.WriteString(before)
				return sb.String()
			}
			_, _ = sb.WriteString(n.Data)
		case html.ElementNode:
			if endsTrailingText(n.DataAtom) {
				return sb.String()
			}
			_, _ = sb.WriteString(goquery.NewDocumentFromNode(n).Text())
		}
	}
	return sb.String()
}

func endsTrailingText(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.A, atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Hr,
		atom.Table, atom.Tr, atom.Blockquote, atom.H1, atom.H2, atom.H3, atom.H4:
		return true
	default:
		return false
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

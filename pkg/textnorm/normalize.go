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

// Package textnorm canonicalizes song titles and artist names for comparison
// and scores how alike two of them are.
//
// Normalized strings are only ever compared, never stored or displayed.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// strippedPunctuation holds the separators and brackets that never carry
// identity in a song title or artist name.
const strippedPunctuation = "-_.·,()[]{}<>（）［］｛｝＜＞「」『』【】〈〉《》〔〕"

func isStrippedPunctuation(r rune) bool {
	return strings.ContainsRune(strippedPunctuation, r)
}

// isComparable reports whether a rune survives normalization: Latin letters,
// Hangul, and ASCII or fullwidth digits. Fullwidth Latin letters are Latin
// script, so they pass here and are folded to ASCII afterwards.
func isComparable(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= '０' && r <= '９':
		return true
	case unicode.Is(unicode.Hangul, r):
		return true
	case unicode.Is(unicode.Latin, r):
		return unicode.IsLetter(r)
	default:
		return false
	}
}

// Normalize returns the canonical comparison form of s.
//
// Stages, in order:
//  1. NFC composition and lower-casing
//  2. Whitespace removal
//  3. Punctuation and bracket removal
//  4. Removal of everything that is not a Latin letter, Hangul or digit
//  5. Fullwidth to halfwidth folding
//  6. NFC again, so conjoining jamo left adjacent by stage 4 compose
//
// Normalize is idempotent and never fails; it may return "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(norm.NFC.String(s))

	// transformers are stateful, so the chain is built per call
	t := transform.Chain(
		runes.Remove(runes.Predicate(unicode.IsSpace)),
		runes.Remove(runes.Predicate(isStrippedPunctuation)),
		runes.Remove(runes.Predicate(func(r rune) bool { return !isComparable(r) })),
		width.Fold,
		norm.NFC,
	)
	if normalized, _, err := transform.String(t, s); err == nil {
		return normalized
	}

	return normalizeFallback(s)
}

// normalizeFallback applies the same stages rune by rune. It is only reached
// if the transform chain reports an error.
func normalizeFallback(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || isStrippedPunctuation(r) || !isComparable(r) {
			continue
		}
		_, _ = sb.WriteRune(r)
	}
	return norm.NFC.String(width.Fold.String(sb.String()))
}

// Equal reports whether a and b normalize to the same non-empty string.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}

// Contains reports whether either normalized string contains the other.
// Empty normalized strings never contain or are contained.
func Contains(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

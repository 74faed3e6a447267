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

package textnorm

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Similarity returns 1 - levenshtein(a', b') / max(len(a'), len(b')) where a'
// and b' are the normalized inputs and lengths are counted in runes.
//
// Empty inputs score 0, identical inputs score 1. Inputs that normalize to
// nothing (pure punctuation, unsupported scripts) also score 0, since there is
// nothing left to compare.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	na, nb := Normalize(a), Normalize(b)
	la, lb := utf8.RuneCountInString(na), utf8.RuneCountInString(nb)
	if la == 0 || lb == 0 {
		return 0
	}

	dist := edlib.LevenshteinDistance(na, nb)
	return 1 - float64(dist)/float64(max(la, lb))
}

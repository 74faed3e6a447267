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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "left empty", a: "", b: "abc", expected: 0},
		{name: "right empty", a: "abc", b: "", expected: 0},
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "identical", a: "좋은날", b: "좋은날", expected: 1},
		{name: "identical after normalization", a: "좋은 날", b: "좋은날", expected: 1},
		{name: "case insensitive", a: "Blueming", b: "BLUEMING", expected: 1},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", expected: 1 - 3.0/7.0},
		{name: "one hangul substitution", a: "밤편지", b: "밤편자", expected: 1 - 1.0/3.0},
		{name: "completely different", a: "abc", b: "xyz", expected: 0},
		{name: "nothing comparable", a: "!!!", b: "???", expected: 0},
		{name: "one side nothing comparable", a: "!!!", b: "abc", expected: 0},
		{name: "length counted in runes", a: "난춘", b: "난춘봄", expected: 1 - 1.0/3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

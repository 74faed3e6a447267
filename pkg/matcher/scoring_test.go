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
	"testing"

	"github.com/setlistd/setlist-core/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestScoreField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		primary  string
		alias    string
		source   Reason
		tags     []string
		expected float64
	}{
		{
			name:     "primary exact after normalization",
			input:    "좋은 날",
			primary:  "좋은날",
			expected: 1,
			source:   ReasonExact,
		},
		{
			name:     "alias beats primary",
			input:    "Good Day",
			primary:  "좋은날",
			alias:    "good day",
			expected: 1,
			source:   ReasonAlias,
		},
		{
			name:     "tag exact short-circuits",
			input:    "좋은날",
			primary:  "Good Day",
			tags:     []string{"other", "좋은 날"},
			expected: 1,
			source:   ReasonTagExact,
		},
		{
			name:     "tag containment floors the field",
			input:    "좋은날",
			primary:  "Good Day",
			tags:     []string{"좋은날 라이브"},
			expected: TagContainmentFloor,
			source:   ReasonTagPartial,
		},
		{
			name:     "tag containment never lowers a higher score",
			input:    "abcdefghij",
			primary:  "abcdefghiz",
			tags:     []string{"abc"},
			expected: 0.9,
			source:   ReasonFuzzy,
		},
		{
			name:     "empty tags ignored",
			input:    "abcdefghij",
			primary:  "zzzzzzzzzz",
			tags:     []string{"", "!!!"},
			expected: 0,
			source:   ReasonFuzzy,
		},
		{
			name:     "empty input scores zero",
			input:    "",
			primary:  "좋은날",
			tags:     []string{"좋은날"},
			expected: 0,
			source:   ReasonFuzzy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scoreField(tt.input, tt.primary, tt.alias, tt.tags)
			assert.InDelta(t, tt.expected, got.score, 1e-9)
			assert.Equal(t, tt.source, got.source)
		})
	}
}

func TestScore_TagsApplyToArtist(t *testing.T) {
	t.Parallel()

	e := catalog.Entry{ID: "1", Title: "좋은날", Artist: "IU", SearchTags: []string{"아이유"}}
	titleSim, artistSim, reason := Score("아이유", "좋은날", &e)

	assert.InDelta(t, 1.0, titleSim, 1e-9)
	assert.InDelta(t, 1.0, artistSim, 1e-9)
	assert.Equal(t, ReasonTagExact, reason)
}

func TestCombineReasons(t *testing.T) {
	t.Parallel()

	f := func(r Reason) fieldScore { return fieldScore{source: r} }

	assert.Equal(t, ReasonExact, combineReasons(f(ReasonExact), f(ReasonExact)))
	assert.Equal(t, ReasonTagExact, combineReasons(f(ReasonExact), f(ReasonTagExact)))
	assert.Equal(t, ReasonTitleExact, combineReasons(f(ReasonExact), f(ReasonFuzzy)))
	assert.Equal(t, ReasonTagPartial, combineReasons(f(ReasonFuzzy), f(ReasonTagPartial)))
	assert.Equal(t, ReasonAlias, combineReasons(f(ReasonAlias), f(ReasonFuzzy)))
	assert.Equal(t, ReasonFuzzy, combineReasons(f(ReasonFuzzy), f(ReasonFuzzy)))
}

func TestPolicyConfidence(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.7*0.9+0.3*0.5, ManualEntryPolicy.Confidence(0.9, 0.5), 1e-9)
	assert.InDelta(t, 0.6*0.9+0.4*0.5, TimelinePolicy.Confidence(0.9, 0.5), 1e-9)
	assert.InDelta(t, 1.0, ManualEntryPolicy.Confidence(1, 1), 1e-12)
	assert.InDelta(t, 1.0, TimelinePolicy.Confidence(1, 1), 1e-12)
	assert.InDelta(t, 0.0, TimelinePolicy.Confidence(0, 0), 1e-12)
}

func TestPolicyValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ManualEntryPolicy.Validate())
	assert.NoError(t, TimelinePolicy.Validate())

	bad := []Policy{
		{Name: "negative", TitleWeight: 1.2, ArtistWeight: -0.2, AcceptThreshold: 0.9},
		{Name: "sum", TitleWeight: 0.5, ArtistWeight: 0.4, AcceptThreshold: 0.9},
		{Name: "threshold", TitleWeight: 0.5, ArtistWeight: 0.5, AcceptThreshold: 1.5},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy, p.Name)
	}
}

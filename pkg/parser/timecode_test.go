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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
	}{
		{input: "9:57", expected: 597},
		{input: "09:57", expected: 597},
		{input: "0:05", expected: 5},
		{input: "1:02:03", expected: 3723},
		{input: " 12:00 ", expected: 720},
		{input: "57", expected: 0},
		{input: "1:2:3:4", expected: 0},
		{input: "a:bc", expected: 0},
		{input: "1:-5", expected: 0},
		{input: "", expected: 0},
		{input: "596523:14:07", expected: 2147483647},
		{input: "596523:14:08", expected: 0},
		{input: "3000000000000000:00:00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseTimeString(tt.input))
		})
	}
}

func TestParseOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{input: "125", expected: 125, ok: true},
		{input: "125s", expected: 125, ok: true},
		{input: "2m5s", expected: 125, ok: true},
		{input: "1h2m5s", expected: 3725, ok: true},
		{input: "1h", expected: 3600, ok: true},
		{input: "3m", expected: 180, ok: true},
		{input: "", ok: false},
		{input: "abc", ok: false},
		{input: "5x", ok: false},
		{input: "-5", ok: false},
		{input: "2147483647", expected: 2147483647, ok: true},
		{input: "2147483648", ok: false},
		{input: "3000000000000000h", ok: false},
		{input: "596524h", ok: false},
		{input: "99999999999999999999s", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := parseOffset(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimedWatchOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href     string
		expected int
		ok       bool
	}{
		{href: "https://youtu.be/abc?t=125", expected: 125, ok: true},
		{href: "http://www.youtu.be/abc?t=1", expected: 1, ok: true},
		{href: "https://www.youtube.com/watch?v=abc&t=2m", expected: 120, ok: true},
		{href: "https://m.youtube.com/watch?v=abc&t=9", expected: 9, ok: true},
		{href: "https://WWW.YOUTUBE.COM/watch?v=abc&t=9", expected: 9, ok: true},
		{href: "https://youtube.com/live/abc?t=30", expected: 30, ok: true},
		{href: "https://youtu.be/?t=125", ok: false},
		{href: "https://youtu.be/abc", ok: false},
		{href: "https://www.youtube.com/shorts/abc?t=3", ok: false},
		{href: "https://www.youtube.com/live/?t=3", ok: false},
		{href: "https://vimeo.com/123?t=3", ok: false},
		{href: "ftp://youtu.be/abc?t=3", ok: false},
		{href: "/watch?v=abc&t=3", ok: false},
		{href: "://bad", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()
			got, ok := timedWatchOffset(tt.href)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStripOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "https://youtu.be/abc?t=125", expected: "https://youtu.be/abc"},
		{
			input:    "https://www.youtube.com/watch?v=x&t=5&list=y",
			expected: "https://www.youtube.com/watch?v=x&list=y",
		},
		{input: "https://www.youtube.com/watch?t=5&v=x", expected: "https://www.youtube.com/watch?v=x"},
		{input: "https://youtu.be/a?t=1#frag", expected: "https://youtu.be/a#frag"},
		{input: "https://youtu.be/a?si=q&tt=1", expected: "https://youtu.be/a?si=q&tt=1"},
		{input: "https://youtu.be/a", expected: "https://youtu.be/a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StripOffset(tt.input))
		})
	}
}

func TestSplitArtistTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		artist string
		title  string
		ok     bool
	}{
		{input: "새소년 - 난춘", artist: "새소년", title: "난춘", ok: true},
		{input: "A – B", artist: "A", title: "B", ok: true},
		{input: "A — B", artist: "A", title: "B", ok: true},
		{input: "A | B", artist: "A", title: "B", ok: true},
		{input: "A / B", artist: "A", title: "B", ok: true},
		{input: "A - B - C", artist: "A", title: "B - C", ok: true},
		{input: "AC/DC - Thunderstruck", artist: "AC/DC", title: "Thunderstruck", ok: true},
		{input: "A | B - C", artist: "A | B", title: "C", ok: true},
		{input: " - B | C", artist: "- B", title: "C", ok: true},
		{input: "Unknown Song Name", ok: false},
		{input: "A-B", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			artist, title, ok := SplitArtistTitle(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.artist, artist)
				assert.Equal(t, tt.title, title)
			}
		})
	}
}

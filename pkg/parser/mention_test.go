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
	"github.com/stretchr/testify/require"
)

func TestLinkMentions(t *testing.T) {
	t.Parallel()

	mentions := []Mention{
		{Title: "c", StartSeconds: 300},
		{Title: "a", StartSeconds: 0},
		{Title: "b", StartSeconds: 120},
	}
	linkMentions(mentions)

	assert.Equal(t, "a", mentions[0].Title)
	assert.Equal(t, "b", mentions[1].Title)
	assert.Equal(t, "c", mentions[2].Title)

	require.NotNil(t, mentions[0].EndSeconds)
	assert.Equal(t, 120, *mentions[0].EndSeconds)
	assert.Equal(t, 120, *mentions[0].DurationSeconds)
	require.NotNil(t, mentions[1].EndSeconds)
	assert.Equal(t, 300, *mentions[1].EndSeconds)
	assert.Equal(t, 180, *mentions[1].DurationSeconds)
	assert.Nil(t, mentions[2].EndSeconds)
	assert.Nil(t, mentions[2].DurationSeconds)
}

func TestLinkMentions_Empty(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { linkMentions(nil) })
}

func TestMentionClipID(t *testing.T) {
	t.Parallel()

	a := Mention{SourceURL: "https://youtu.be/abc", StartSeconds: 125}
	b := Mention{SourceURL: "https://youtu.be/abc", StartSeconds: 125, Title: "other"}
	c := Mention{SourceURL: "https://youtu.be/abc", StartSeconds: 126}
	d := Mention{SourceURL: "https://youtu.be/xyz", StartSeconds: 125}

	assert.Equal(t, a.ClipID(), b.ClipID(), "id depends only on source and start")
	assert.NotEqual(t, a.ClipID(), c.ClipID())
	assert.NotEqual(t, a.ClipID(), d.ClipID())
	assert.Equal(t, 5, int(a.ClipID().Version()))
}

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

// Package airdate pulls a broadcast date out of a free-text video title.
package airdate

import (
	"regexp"
	"strconv"
	"time"
)

// Info is the broadcast date found in a title. Date and Matched are both nil
// when no pattern matched.
type Info struct {
	Date    *time.Time `json:"date"`
	Matched *string    `json:"matchedSubstring"`
}

// Found reports whether a date was extracted.
func (i Info) Found() bool {
	return i.Date != nil
}

// twoDigitYearPivot splits two-digit years: below it is 20YY, otherwise 19YY.
const twoDigitYearPivot = 50

// pattern is one step of the extraction cascade. Group 1 of re is the exact
// substring reported back; fields names which groups hold year, month and day.
type pattern struct {
	re     *regexp.Regexp
	name   string
	fields [3]int
}

// patterns are tried in order; the first one yielding a real calendar date wins.
// Numeric forms are fenced by non-digits so that a longer number is never
// matched partially.
var patterns = []pattern{
	{
		name:   "yy.m.d",
		re:     regexp.MustCompile(`(?:^|\D)((\d{2})\.(\d{1,2})\.(\d{1,2}))(?:\D|$)`),
		fields: [3]int{2, 3, 4},
	},
	{
		name:   "yyyy.m.d",
		re:     regexp.MustCompile(`(?:^|\D)((\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2}))(?:\D|$)`),
		fields: [3]int{2, 3, 4},
	},
	{
		name:   "m.d.yyyy",
		re:     regexp.MustCompile(`(?:^|\D)((\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4}))(?:\D|$)`),
		fields: [3]int{4, 2, 3},
	},
	{
		name:   "korean",
		re:     regexp.MustCompile(`((\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일)`),
		fields: [3]int{2, 3, 4},
	},
}

// Extract runs the pattern cascade over title. A pattern whose first match is
// not a valid calendar date (for example 2025.02.30) counts as no match and the
// cascade moves on.
func Extract(title string) Info {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}

		year := atoi(m[p.fields[0]])
		if p.name == "yy.m.d" {
			year = expandYear(year)
		}

		date, ok := makeDate(year, atoi(m[p.fields[1]]), atoi(m[p.fields[2]]))
		if !ok {
			continue
		}

		matched := m[1]
		return Info{Date: &date, Matched: &matched}
	}

	return Info{}
}

func expandYear(yy int) int {
	if yy < twoDigitYearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

// makeDate builds a UTC midnight date, rejecting anything time.Date would
// have to normalize (month 13, February 30th and so on).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// atoi only ever sees regexp-validated digit runs.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

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
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// maxOffsetSeconds bounds every parsed offset so start times stay
// non-negative on any platform.
const maxOffsetSeconds = math.MaxInt32

// addScaled returns total + n*mult, or false if the result would pass
// maxOffsetSeconds.
func addScaled(total, n, mult int) (int, bool) {
	if n > (maxOffsetSeconds-total)/mult {
		return 0, false
	}
	return total + n*mult, true
}

// ParseTimeString converts "M:SS", "MM:SS" or "H:MM:SS" to seconds. Any other
// shape, or a non-numeric field, yields 0.
func ParseTimeString(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		nums[i] = n
	}

	var mults []int
	switch len(nums) {
	case 2:
		mults = []int{60, 1}
	case 3:
		mults = []int{3600, 60, 1}
	default:
		return 0
	}

	total := 0
	for i, mult := range mults {
		var ok bool
		if total, ok = addScaled(total, nums[i], mult); !ok {
			return 0
		}
	}
	return total
}

// offsetRe accepts the t= forms video links carry: 125, 125s, 2m5s, 1h2m5s.
var offsetRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)

func parseOffset(v string) (int, bool) {
	m := offsetRe.FindStringSubmatch(v)
	if v == "" || m == nil {
		return 0, false
	}
	total, ok := 0, false
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, false
		}
		if total, ok = addScaled(total, n, mult); !ok {
			return 0, false
		}
	}
	return total, true
}

var watchHosts = map[string]struct{}{
	"youtube.com":       {},
	"www.youtube.com":   {},
	"m.youtube.com":     {},
	"music.youtube.com": {},
}

const shortLinkHost = "youtu.be"

// isWatchURL reports whether u points at a single video on a recognized
// video platform.
func isWatchURL(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == shortLinkHost || host == "www."+shortLinkHost {
		return strings.Trim(u.Path, "/") != ""
	}
	if _, ok := watchHosts[host]; !ok {
		return false
	}

	switch {
	case u.Path == "/watch":
		return u.Query().Get("v") != ""
	case strings.HasPrefix(u.Path, "/live/"):
		return strings.TrimPrefix(u.Path, "/live/") != ""
	default:
		return false
	}
}

// timedWatchOffset returns the time offset carried by href when it is a
// recognized watch URL with a t parameter.
func timedWatchOffset(href string) (int, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || !isWatchURL(u) {
		return 0, false
	}
	return parseOffset(u.Query().Get("t"))
}

// StripOffset removes the t parameter from a URL, keeping every other
// parameter in its original order.
func StripOffset(rawURL string) string {
	base, fragment, hasFragment := strings.Cut(rawURL, "#")
	path, query, hasQuery := strings.Cut(base, "?")
	if !hasQuery {
		return rawURL
	}

	var kept []string
	for _, kv := range strings.Split(query, "&") {
		key, _, _ := strings.Cut(kv, "=")
		if kv == "" || key == "t" {
			continue
		}
		kept = append(kept, kv)
	}

	out := path
	if len(kept) > 0 {
		out += "?" + strings.Join(kept, "&")
	}
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

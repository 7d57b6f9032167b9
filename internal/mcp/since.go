// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"

	"github.com/rusq/slackmcp/internal/structures"
)

// sinceLayouts are the accepted absolute date and time layouts.  Layouts
// without the time zone are interpreted as UTC.
var sinceLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

var reAgo = regexp.MustCompile(`^(\d+)\s*(minute|min|hour|hr|day|week|month|year)s?\s+ago$`)

// sinceHelp describes the accepted values, it is shown to the agent in the
// tool schema.
const sinceHelp = `Only return messages after this moment.  Accepts a date or date and time ` +
	`("2024-01-31", "2024-01-31T15:04:05Z"), "now", "today", "yesterday", ` +
	`relative expressions ("3 days ago", "1 week ago", "2 hours ago") or an ` +
	`ISO-8601 duration meaning "that long ago" ("P1W", "PT36H").  Dates without a time zone are UTC.`

// oldestCutoff converts the since argument into the Slack "oldest" parameter,
// the whole number of seconds since the epoch.  Empty since returns an empty
// string, meaning no lower bound.
func oldestCutoff(since string, now time.Time) (string, error) {
	since = strings.TrimSpace(since)
	if since == "" {
		return "", nil
	}
	t, err := parseSince(since, now)
	if err != nil {
		return "", err
	}
	return structures.UnixCutoff(t), nil
}

func parseSince(s string, now time.Time) (time.Time, error) {
	for _, layout := range sinceLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	ls := strings.ToLower(s)
	switch ls {
	case "now":
		return now, nil
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := reAgo.FindStringSubmatch(ls); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: since: %s", ErrInvalidArgument, err)
		}
		switch m[2] {
		case "minute", "min":
			return now.Add(-time.Duration(n) * time.Minute), nil
		case "hour", "hr":
			return now.Add(-time.Duration(n) * time.Hour), nil
		case "day":
			return now.AddDate(0, 0, -n), nil
		case "week":
			return now.AddDate(0, 0, -7*n), nil
		case "month":
			return now.AddDate(0, -n, 0), nil
		case "year":
			return now.AddDate(-n, 0, 0), nil
		}
	}

	if strings.HasPrefix(ls, "p") {
		if d, err := duration.Parse(strings.ToUpper(s)); err == nil {
			return now.Add(-d.ToTimeDuration()), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: since: cannot parse %q", ErrInvalidArgument, s)
}

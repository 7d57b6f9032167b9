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
package structures

// in this file: slack timestamp parsing functions

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ISOMillis is the layout used to render message timestamps for the agent:
// UTC, millisecond precision, "Z" suffix.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// ParseSlackTS parses the slack timestamp ("seconds.micros") and returns
// time.Time in UTC.  Fractional parts shorter or longer than 6 digits are
// padded or truncated to microseconds.
func ParseSlackTS(timestamp string) (time.Time, error) {
	const (
		base = 10
		bit  = 64
	)
	sSec, sMicro, _ := strings.Cut(timestamp, ".")
	if sSec == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	switch {
	case len(sMicro) < 6:
		sMicro += strings.Repeat("0", 6-len(sMicro))
	case len(sMicro) > 6:
		sMicro = sMicro[:6]
	}
	sec, err := strconv.ParseInt(sSec, base, bit)
	if err != nil {
		return time.Time{}, err
	}
	if sMicro[0] == '-' || sMicro[0] == '+' {
		return time.Time{}, errors.New("invalid fractional part")
	}
	micro, err := strconv.ParseInt(sMicro, base, bit)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(sec*1_000_000 + micro).UTC(), nil
}

// FormatSlackTS formats the time as a slack timestamp.  Zero time and times
// before the Unix epoch are returned as an empty string.
func FormatSlackTS(ts time.Time) string {
	if ts.IsZero() || ts.Before(time.Unix(0, 0)) {
		return ""
	}
	return strconv.FormatInt(ts.Unix(), 10) + "." + pad6(ts.UnixMicro()%1_000_000)
}

func pad6(n int64) string {
	s := strconv.FormatInt(n, 10)
	return strings.Repeat("0", 6-len(s)) + s
}

// SlackTimeISO renders the slack timestamp in ISO-8601 with millisecond
// precision.  If the timestamp can't be parsed, it is returned as is.
func SlackTimeISO(ts string) string {
	t, err := ParseSlackTS(ts)
	if err != nil {
		return ts
	}
	return t.Truncate(time.Millisecond).Format(ISOMillis)
}

// UnixCutoff returns the Unix time of t in whole seconds as a decimal
// string, which is what "oldest" parameter of conversations.history
// expects.
func UnixCutoff(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

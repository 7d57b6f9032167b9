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
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func unix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func Test_oldestCutoff(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 30, 45, 500_000_000, time.UTC)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		since   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"blank", "   ", "", false},
		{"date", "2023-11-14", "1699920000", false},
		{"date with slashes", "2023/11/14", "1699920000", false},
		{"rfc3339", "2023-11-14T22:13:20Z", "1700000000", false},
		{"rfc3339 with fraction is floored", "2023-11-14T22:13:20.999Z", "1700000000", false},
		{"rfc3339 with offset", "2023-11-15T00:13:20+02:00", "1700000000", false},
		{"no zone is UTC", "2023-11-14T22:13:20", "1700000000", false},
		{"space separated", "2023-11-14 22:13:20", "1700000000", false},
		{"now", "now", unix(now), false},
		{"today", "today", unix(today), false},
		{"yesterday", "Yesterday", unix(today.AddDate(0, 0, -1)), false},
		{"minutes ago", "15 minutes ago", unix(now.Add(-15 * time.Minute)), false},
		{"hours ago", "2 hours ago", unix(now.Add(-2 * time.Hour)), false},
		{"one day ago", "1 day ago", unix(now.AddDate(0, 0, -1)), false},
		{"days ago", "3 days ago", unix(now.AddDate(0, 0, -3)), false},
		{"week ago", "1 week ago", unix(now.AddDate(0, 0, -7)), false},
		{"months ago", "2 months ago", unix(now.AddDate(0, -2, 0)), false},
		{"year ago", "1 YEAR AGO", unix(now.AddDate(-1, 0, 0)), false},
		{"iso duration", "P1W", unix(now.Add(-7 * 24 * time.Hour)), false},
		{"iso time duration", "PT36H", unix(now.Add(-36 * time.Hour)), false},
		{"garbage", "last tuesday", "", true},
		{"bad date", "2023-13-45", "", true},
		{"bad duration", "Pxyz", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oldestCutoff(tt.since, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.ErrorContains(t, err, "since")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

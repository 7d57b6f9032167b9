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

package network

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestNewLimiter(t *testing.T) {
	type args struct {
		t     Tier
		burst uint
		boost int
	}
	tests := []struct {
		name       string
		args       args
		wantPerSec rate.Limit
		wantBurst  int
	}{
		{
			name: "tier 2",
			args: args{
				t:     Tier2,
				burst: 10,
				boost: 0,
			},
			wantPerSec: 0.3333333333333333,
			wantBurst:  10,
		},
		{
			name: "tier 2 boosted",
			args: args{
				t:     Tier2,
				burst: 1,
				boost: 20,
			},
			wantPerSec: 0.6666666666666666,
			wantBurst:  1,
		},
		{
			name: "no tier",
			args: args{
				t:     NoTier,
				burst: 1,
				boost: 0,
			},
			wantPerSec: 100,
			wantBurst:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLimiter(tt.args.t, tt.args.burst, tt.args.boost)
			if got.Limit() != tt.wantPerSec {
				t.Errorf("NewLimiter() = %v, want %v", got.Limit(), tt.wantPerSec)
			}
			if got.Burst() != tt.wantBurst {
				t.Errorf("NewLimiter() burst = %v, want %v", got.Burst(), tt.wantBurst)
			}
		})
	}
}

func TestTierLimit_Limiter(t *testing.T) {
	l := TierLimit{Boost: 30, Burst: 2}.Limiter(Tier3)
	if l.Limit() != rate.Every(750*time.Millisecond) { // 80 per minute
		t.Errorf("Limiter() = %v, want 80/min", l.Limit())
	}
	if l.Burst() != 2 {
		t.Errorf("Limiter() burst = %d, want 2", l.Burst())
	}
}

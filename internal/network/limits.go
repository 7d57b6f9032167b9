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
	"github.com/rusq/slackmcp/internal/validation"
)

// Limits contains the API limits for the Slack calls made by the server.
type Limits struct {
	// Tier2 is used by conversations.list and search.messages.
	Tier2 TierLimit `toml:"tier_2"`
	// Tier3 is used by conversations.history.
	Tier3 TierLimit `toml:"tier_3"`
	// Tier4 is used by users.info.
	Tier4 TierLimit `toml:"tier_4"`
	// Request is the page sizes of the calls that accept the limit.
	Request RequestLimit `toml:"per_request"`
}

// TierLimit represents a Slack API Tier limits.
type TierLimit struct {
	// Tier limiter boost
	Boost uint `toml:"boost"`
	// Tier limiter burst
	Burst uint `toml:"burst" validate:"gte=1"`
}

// RequestLimit defines the limits on the requests that are sent to the API.
type RequestLimit struct {
	// number of channels to fetch per 1 API call to conversations.list.
	// The listing is never paginated, so this is the maximum number of
	// channels that a name can be resolved against.
	Channels int `toml:"channels" validate:"gte=1,lte=1000"`
}

// DefLimits is the default limits.
var DefLimits = Limits{
	Tier2: TierLimit{
		Boost: 20, // seems to work fine with this boost
		Burst: 1,
	},
	Tier3: TierLimit{
		Boost: 120,
		Burst: 1,
	},
	Tier4: TierLimit{
		Boost: 20,
		Burst: 10, // users.info is called in bursts, one per message author
	},
	Request: RequestLimit{
		Channels: 1000,
	},
}

// Validate validates the limits.
func (l Limits) Validate() error {
	return validation.Struct(l)
}

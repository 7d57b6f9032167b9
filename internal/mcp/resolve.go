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
	"context"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/structures"
)

// resolveChannel returns the channel ID for the channel reference.  If ref
// looks like a channel ID, it is returned as is, without calling the API.
// Otherwise, channels of the given visibility are listed and the name is
// matched exactly.  The listing is not cached between calls.
func resolveChannel(ctx context.Context, remote client.Remote, ref string, vis client.Visibility) (string, error) {
	if structures.IsChannelID(ref) {
		return ref, nil
	}
	name := structures.ChannelName(ref)
	channels, err := remote.ListChannels(ctx, vis)
	if err != nil {
		return "", err
	}
	for _, ch := range channels {
		if ch.Name == name {
			return ch.ID, nil
		}
	}
	return "", &NotFoundError{Kind: "channel", Name: ref}
}

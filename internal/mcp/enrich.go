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
	"log/slog"

	"github.com/rusq/slack"
	"golang.org/x/sync/errgroup"

	"github.com/rusq/slackmcp/internal/client"
)

// defConcurrency is the default number of concurrent users.info calls.
const defConcurrency = 8

// enrichUsers resolves the authors of the messages to their display names.
// Each distinct author is looked up once, lookups run concurrently, at most
// concurrency at a time.  A failed lookup does not affect the others: the
// author is omitted from the returned map.
func enrichUsers(ctx context.Context, lg *slog.Logger, remote client.Remote, msgs []slack.Message, concurrency int) map[string]string {
	ids := authorIDs(msgs)
	if len(ids) == 0 {
		return map[string]string{}
	}

	// each lookup writes to its own slot.
	names := make([]string, len(ids))
	var eg errgroup.Group
	eg.SetLimit(max(concurrency, 1))
	for i, id := range ids {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					lg.WarnContext(ctx, "user lookup panicked", "user_id", id, "panic", r)
				}
			}()
			u, err := remote.UserInfo(ctx, id)
			if err != nil {
				lg.DebugContext(ctx, "user lookup failed", "user_id", id, "error", err)
				return nil
			}
			names[i] = displayName(u)
			return nil
		})
	}
	_ = eg.Wait() // goroutines never return an error

	users := make(map[string]string, len(ids))
	for i, id := range ids {
		if names[i] != "" {
			users[id] = names[i]
		}
	}
	return users
}

// authorIDs returns distinct non-empty author IDs in the order of the first
// appearance.
func authorIDs(msgs []slack.Message) []string {
	seen := make(map[string]struct{}, len(msgs))
	var ids []string
	for _, m := range msgs {
		if m.User == "" {
			continue
		}
		if _, ok := seen[m.User]; ok {
			continue
		}
		seen[m.User] = struct{}{}
		ids = append(ids, m.User)
	}
	return ids
}

// displayName returns the real name of the user, or the username, if the real
// name is not set.
func displayName(u *slack.User) string {
	if u == nil {
		return ""
	}
	if u.RealName != "" {
		return u.RealName
	}
	return u.Name
}

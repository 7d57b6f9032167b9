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

package client

// In this file: read-only workspace operations.

import (
	"context"
	"log/slog"

	"github.com/rusq/slack"
	"golang.org/x/time/rate"

	"github.com/rusq/slackmcp/internal/network"
)

// Visibility is the set of channel types to list.
type Visibility uint8

const (
	// VisibilityPublic lists public channels only.
	VisibilityPublic Visibility = iota
	// VisibilityAll lists public and private channels that the token has
	// access to.
	VisibilityAll
)

func (v Visibility) types() []string {
	if v == VisibilityAll {
		return []string{"public_channel", "private_channel"}
	}
	return []string{"public_channel"}
}

func (v Visibility) String() string {
	if v == VisibilityAll {
		return "public+private"
	}
	return "public"
}

// Remote is the set of the read-only workspace operations.  Each method
// makes a single API call and returns a single page of results.
type Remote interface {
	// ListChannels lists the non-archived channels of the given visibility.
	ListChannels(ctx context.Context, vis Visibility) ([]slack.Channel, error)
	// History returns up to limit most recent messages of the channel.  If
	// oldest is not empty, only messages after it are returned.
	History(ctx context.Context, channelID string, limit int, oldest string) ([]slack.Message, error)
	// UserInfo returns the user information.
	UserInfo(ctx context.Context, userID string) (*slack.User, error)
	// SearchMessages runs the search query and returns at most count
	// matches, most recent first.
	SearchMessages(ctx context.Context, query string, count int) (*slack.SearchMessages, error)
}

var _ Remote = (*Workspace)(nil)

// Workspace implements Remote on top of the Slack API client.  Calls are
// paced according to the API tier of each method.  Workspace does not retry:
// errors are classified (see ErrNotFound, ErrRateLimited, ErrTransient) and
// returned to the caller.
type Workspace struct {
	api    Slack
	limits network.Limits
	lg     *slog.Logger

	lim struct {
		channels *rate.Limiter
		history  *rate.Limiter
		users    *rate.Limiter
		search   *rate.Limiter
	}
}

// WorkspaceOption is the option for NewWorkspace.
type WorkspaceOption func(*Workspace)

// WithLimits sets the API limits.
func WithLimits(l network.Limits) WorkspaceOption {
	return func(w *Workspace) {
		w.limits = l
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) WorkspaceOption {
	return func(w *Workspace) {
		if lg != nil {
			w.lg = lg
		}
	}
}

// NewWorkspace returns the Workspace that uses the api to make calls.
func NewWorkspace(api Slack, opts ...WorkspaceOption) *Workspace {
	w := &Workspace{
		api:    api,
		limits: network.DefLimits,
		lg:     slog.Default(),
	}
	for _, o := range opts {
		o(w)
	}
	w.lim.channels = w.limits.Tier2.Limiter(network.Tier2)
	w.lim.history = w.limits.Tier3.Limiter(network.Tier3)
	w.lim.users = w.limits.Tier4.Limiter(network.Tier4)
	w.lim.search = w.limits.Tier2.Limiter(network.Tier2)
	return w
}

func (w *Workspace) ListChannels(ctx context.Context, vis Visibility) ([]slack.Channel, error) {
	const method = "conversations.list"
	if err := w.lim.channels.Wait(ctx); err != nil {
		return nil, err
	}
	w.lg.DebugContext(ctx, "listing channels", "visibility", vis.String(), "limit", w.limits.Request.Channels)
	channels, _, err := w.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Types:           vis.types(),
		Limit:           w.limits.Request.Channels,
		ExcludeArchived: true,
	})
	if err != nil {
		return nil, classify(method, err)
	}
	return channels, nil
}

func (w *Workspace) History(ctx context.Context, channelID string, limit int, oldest string) ([]slack.Message, error) {
	const method = "conversations.history"
	if err := w.lim.history.Wait(ctx); err != nil {
		return nil, err
	}
	w.lg.DebugContext(ctx, "fetching history", "channel_id", channelID, "limit", limit, "oldest", oldest)
	resp, err := w.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     limit,
		Oldest:    oldest,
	})
	if err != nil {
		return nil, classify(method, err)
	}
	return resp.Messages, nil
}

func (w *Workspace) UserInfo(ctx context.Context, userID string) (*slack.User, error) {
	const method = "users.info"
	if err := w.lim.users.Wait(ctx); err != nil {
		return nil, err
	}
	u, err := w.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, classify(method, err)
	}
	return u, nil
}

func (w *Workspace) SearchMessages(ctx context.Context, query string, count int) (*slack.SearchMessages, error) {
	const method = "search.messages"
	if err := w.lim.search.Wait(ctx); err != nil {
		return nil, err
	}
	w.lg.DebugContext(ctx, "searching messages", "query", query, "count", count)
	sm, err := w.api.SearchMessagesContext(ctx, query, slack.SearchParameters{
		Sort:          "timestamp",
		SortDirection: "desc",
		Count:         count,
		Page:          1,
	})
	if err != nil {
		return nil, classify(method, err)
	}
	return sm, nil
}

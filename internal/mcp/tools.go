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

// In this file: MCP tool definitions and pipelines.

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/structures"
)

const (
	defHistoryLimit = 100
	maxHistoryLimit = 1000
	defSearchCount  = 20
	maxSearchCount  = 100
)

// ─── list_channels ────────────────────────────────────────────────────────────

type listChannels struct {
	remote client.Remote
}

type listChannelsArgs struct {
	IncludePrivate bool `json:"include_private"`
}

type channelList struct {
	ChannelCount int           `json:"channel_count"`
	Channels     []channelInfo `json:"channels"`
}

func (listChannels) Name() string { return "list_channels" }

func (t listChannels) Definition() mcplib.Tool {
	return mcplib.NewTool(t.Name(),
		mcplib.WithDescription("List the channels of the Slack workspace. Returns channel names, IDs, privacy flags, member counts and purposes. Archived channels are not listed."),
		mcplib.WithBoolean("include_private",
			mcplib.Description("Include private channels that the bot is a member of."),
			mcplib.DefaultBool(false),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
}

func (t listChannels) Execute(ctx context.Context, args map[string]any) (any, error) {
	var (
		a   listChannelsArgs
		err error
	)
	if a.IncludePrivate, err = boolArg(args, "include_private", false); err != nil {
		return nil, fmt.Errorf("list_channels: %w", err)
	}

	vis := client.VisibilityPublic
	if a.IncludePrivate {
		vis = client.VisibilityAll
	}
	chans, err := t.remote.ListChannels(ctx, vis)
	if err != nil {
		return nil, fmt.Errorf("list_channels: %w", err)
	}
	infos := normalizeChannels(chans)
	return channelList{ChannelCount: len(infos), Channels: infos}, nil
}

// ─── get_channel_messages ─────────────────────────────────────────────────────

type getChannelMessages struct {
	remote      client.Remote
	lg          *slog.Logger
	concurrency int
	// private allows resolving the names of private channels.
	private bool
	now     func() time.Time
}

type getChannelMessagesArgs struct {
	Channel string `json:"channel" validate:"required"`
	Limit   int    `json:"limit" validate:"gte=1,lte=1000"`
	Since   string `json:"since"`
}

type channelMessages struct {
	Channel      string        `json:"channel"`
	MessageCount int           `json:"message_count"`
	Messages     []messageInfo `json:"messages"`
}

func (getChannelMessages) Name() string { return "get_channel_messages" }

func (t getChannelMessages) Definition() mcplib.Tool {
	return mcplib.NewTool(t.Name(),
		mcplib.WithDescription("Get the most recent messages of a Slack channel, newest first. Message authors are resolved to their display names, timestamps are in ISO-8601 (UTC)."),
		mcplib.WithString("channel",
			mcplib.Description(`Channel name (e.g. "general" or "#general") or channel ID (e.g. "C0123456789").`),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description(fmt.Sprintf("Maximum number of messages to return (1-%d).", maxHistoryLimit)),
			mcplib.DefaultNumber(defHistoryLimit),
			mcplib.Min(1),
			mcplib.Max(maxHistoryLimit),
		),
		mcplib.WithString("since",
			mcplib.Description(sinceHelp),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
}

func (t getChannelMessages) args(args map[string]any) (a getChannelMessagesArgs, err error) {
	if a.Channel, err = stringArg(args, "channel"); err != nil {
		return a, err
	}
	a.Channel = strings.TrimSpace(a.Channel)
	if a.Limit, err = intArg(args, "limit", defHistoryLimit); err != nil {
		return a, err
	}
	if a.Since, err = stringArg(args, "since"); err != nil {
		return a, err
	}
	return a, validateArgs(a)
}

func (t getChannelMessages) Execute(ctx context.Context, args map[string]any) (any, error) {
	a, err := t.args(args)
	if err != nil {
		return nil, fmt.Errorf("get_channel_messages: %w", err)
	}
	oldest, err := oldestCutoff(a.Since, t.now())
	if err != nil {
		return nil, fmt.Errorf("get_channel_messages: %w", err)
	}

	vis := client.VisibilityPublic
	if t.private {
		vis = client.VisibilityAll
	}
	channelID, err := resolveChannel(ctx, t.remote, a.Channel, vis)
	if err != nil {
		return nil, fmt.Errorf("get_channel_messages: %w", err)
	}
	msgs, err := t.remote.History(ctx, channelID, a.Limit, oldest)
	if err != nil {
		return nil, fmt.Errorf("get_channel_messages: %w", err)
	}

	users := enrichUsers(ctx, t.lg, t.remote, msgs, t.concurrency)
	out := normalizeMessages(msgs, users)
	return channelMessages{Channel: a.Channel, MessageCount: len(out), Messages: out}, nil
}

// ─── search_messages ──────────────────────────────────────────────────────────

type searchMessages struct {
	remote client.Remote
}

type searchMessagesArgs struct {
	Query     string `json:"query" validate:"required"`
	InChannel string `json:"in_channel"`
	Count     int    `json:"count" validate:"gte=1,lte=100"`
}

type searchResult struct {
	Query      string        `json:"query"`
	Total      int           `json:"total"`
	MatchCount int           `json:"match_count"`
	Matches    []searchMatch `json:"matches"`
}

func (searchMessages) Name() string { return "search_messages" }

func (t searchMessages) Definition() mcplib.Tool {
	return mcplib.NewTool(t.Name(),
		mcplib.WithDescription("Search the messages of the Slack workspace, most recent first. The query supports Slack search modifiers (from:, in:, before:, after:, has:). Requires a user token."),
		mcplib.WithString("query",
			mcplib.Description("Search query."),
			mcplib.Required(),
		),
		mcplib.WithString("in_channel",
			mcplib.Description(`Limit the search to this channel name (e.g. "ops").`),
		),
		mcplib.WithNumber("count",
			mcplib.Description(fmt.Sprintf("Maximum number of matches to return (1-%d).", maxSearchCount)),
			mcplib.DefaultNumber(defSearchCount),
			mcplib.Min(1),
			mcplib.Max(maxSearchCount),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
}

func (t searchMessages) args(args map[string]any) (a searchMessagesArgs, err error) {
	if a.Query, err = stringArg(args, "query"); err != nil {
		return a, err
	}
	a.Query = strings.TrimSpace(a.Query)
	if a.InChannel, err = stringArg(args, "in_channel"); err != nil {
		return a, err
	}
	if a.Count, err = intArg(args, "count", defSearchCount); err != nil {
		return a, err
	}
	return a, validateArgs(a)
}

func (t searchMessages) Execute(ctx context.Context, args map[string]any) (any, error) {
	a, err := t.args(args)
	if err != nil {
		return nil, fmt.Errorf("search_messages: %w", err)
	}
	q := searchQuery(a.Query, a.InChannel)
	sm, err := t.remote.SearchMessages(ctx, q, a.Count)
	if err != nil {
		return nil, fmt.Errorf("search_messages: %w", err)
	}
	if sm == nil {
		sm = new(slack.SearchMessages)
	}
	matches := normalizeSearchMatches(sm.Matches)
	return searchResult{Query: q, Total: sm.Total, MatchCount: len(matches), Matches: matches}, nil
}

// searchQuery appends the in: modifier to the query, if the channel is set.
func searchQuery(query, channel string) string {
	channel = structures.ChannelName(channel)
	if channel == "" {
		return query
	}
	return query + " in:" + channel
}

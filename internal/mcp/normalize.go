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

// In this file: conversion of Slack API records into tool output.

import (
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/structures"
)

// unknownUser is shown when the message has no author.
const unknownUser = "Unknown"

// channelInfo is a JSON-serialisable summary of a Slack channel.
type channelInfo struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	IsPrivate   bool   `json:"is_private"`
	MemberCount int    `json:"member_count,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
}

// messageInfo is a JSON-serialisable channel message.
type messageInfo struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	// ThreadCount is set for thread parent messages only.
	ThreadCount *int `json:"thread_count,omitempty"`
}

// searchMatch is a JSON-serialisable search result.
type searchMatch struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
}

func normalizeChannels(chans []slack.Channel) []channelInfo {
	out := make([]channelInfo, 0, len(chans))
	for _, ch := range chans {
		out = append(out, channelInfo{
			Name:        ch.Name,
			ID:          ch.ID,
			IsPrivate:   ch.IsPrivate,
			MemberCount: ch.NumMembers,
			Purpose:     ch.Purpose.Value,
		})
	}
	return out
}

// normalizeMessages converts messages, users maps the user ID to the display
// name.  If the user is not in the map, the user ID is used.
func normalizeMessages(msgs []slack.Message, users map[string]string) []messageInfo {
	out := make([]messageInfo, 0, len(msgs))
	for _, m := range msgs {
		mi := messageInfo{
			User:      userName(users[m.User], m.User),
			Text:      m.Text,
			Timestamp: structures.SlackTimeISO(m.Timestamp),
		}
		if m.ThreadTimestamp != "" {
			n := m.ReplyCount
			mi.ThreadCount = &n
		}
		out = append(out, mi)
	}
	return out
}

func normalizeSearchMatches(sm []slack.SearchMessage) []searchMatch {
	out := make([]searchMatch, 0, len(sm))
	for _, m := range sm {
		ch := m.Channel.Name
		if ch == "" {
			ch = m.Channel.ID
		}
		out = append(out, searchMatch{
			User:      userName(m.Username, m.User),
			Text:      m.Text,
			Channel:   ch,
			Timestamp: structures.SlackTimeISO(m.Timestamp),
		})
	}
	return out
}

// userName returns the first non-empty of the arguments, or unknownUser.
func userName(names ...string) string {
	for _, n := range names {
		if n != "" {
			return n
		}
	}
	return unknownUser
}

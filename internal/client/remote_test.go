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

import (
	"context"
	"errors"
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rusq/slackmcp/internal/client/mock_client"
	"github.com/rusq/slackmcp/internal/network"
)

// testLimits do not throttle the calls made by tests.
var testLimits = network.Limits{
	Tier2:   network.TierLimit{Boost: 6000, Burst: 100},
	Tier3:   network.TierLimit{Boost: 6000, Burst: 100},
	Tier4:   network.TierLimit{Boost: 6000, Burst: 100},
	Request: network.RequestLimit{Channels: 200},
}

func TestWorkspace_ListChannels(t *testing.T) {
	tests := []struct {
		name      string
		vis       Visibility
		expectFn  func(ms *mock_client.MockSlack)
		want      []slack.Channel
		wantErrIs error
	}{
		{
			name: "public only",
			vis:  VisibilityPublic,
			expectFn: func(ms *mock_client.MockSlack) {
				ms.EXPECT().GetConversationsContext(gomock.Any(), &slack.GetConversationsParameters{
					Types:           []string{"public_channel"},
					Limit:           200,
					ExcludeArchived: true,
				}).Return([]slack.Channel{fixtureChannel("C1", "general")}, "next", nil)
			},
			want: []slack.Channel{fixtureChannel("C1", "general")},
		},
		{
			name: "public and private",
			vis:  VisibilityAll,
			expectFn: func(ms *mock_client.MockSlack) {
				ms.EXPECT().GetConversationsContext(gomock.Any(), &slack.GetConversationsParameters{
					Types:           []string{"public_channel", "private_channel"},
					Limit:           200,
					ExcludeArchived: true,
				}).Return([]slack.Channel{}, "", nil)
			},
			want: []slack.Channel{},
		},
		{
			name: "rate limited",
			vis:  VisibilityPublic,
			expectFn: func(ms *mock_client.MockSlack) {
				ms.EXPECT().GetConversationsContext(gomock.Any(), gomock.Any()).
					Return(nil, "", &slack.RateLimitedError{})
			},
			wantErrIs: ErrRateLimited,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ms := mock_client.NewMockSlack(ctrl)
			tt.expectFn(ms)

			w := NewWorkspace(ms, WithLimits(testLimits))
			got, err := w.ListChannels(t.Context(), tt.vis)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkspace_History(t *testing.T) {
	t.Run("passes parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		msgs := []slack.Message{fixtureMessage("1700000000.000100", "U1", "hi")}
		ms.EXPECT().GetConversationHistoryContext(gomock.Any(), &slack.GetConversationHistoryParameters{
			ChannelID: "C1",
			Limit:     50,
			Oldest:    "1699999999",
		}).Return(&slack.GetConversationHistoryResponse{Messages: msgs}, nil)

		w := NewWorkspace(ms, WithLimits(testLimits))
		got, err := w.History(t.Context(), "C1", 50, "1699999999")
		require.NoError(t, err)
		assert.Equal(t, msgs, got)
	})
	t.Run("channel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		ms.EXPECT().GetConversationHistoryContext(gomock.Any(), gomock.Any()).
			Return(nil, slack.SlackErrorResponse{Err: "channel_not_found"})

		w := NewWorkspace(ms, WithLimits(testLimits))
		_, err := w.History(t.Context(), "C404", 10, "")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "conversations.history: channel_not_found")
	})
	t.Run("cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		// the limiter wait fails before the call is made.
		w := NewWorkspace(ms, WithLimits(testLimits))
		_, err := w.History(ctx, "C1", 10, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkspace_UserInfo(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		u := &slack.User{ID: "U1", Name: "alice", RealName: "Alice Smith"}
		ms.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(u, nil)

		w := NewWorkspace(ms, WithLimits(testLimits))
		got, err := w.UserInfo(t.Context(), "U1")
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})
	t.Run("server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		ms.EXPECT().GetUserInfoContext(gomock.Any(), "U1").
			Return(nil, slack.StatusCodeError{Code: 502, Status: "Bad Gateway"})

		w := NewWorkspace(ms, WithLimits(testLimits))
		_, err := w.UserInfo(t.Context(), "U1")
		assert.ErrorIs(t, err, ErrTransient)
	})
}

func TestWorkspace_SearchMessages(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		sm := &slack.SearchMessages{
			Matches: []slack.SearchMessage{{Type: "message", User: "U1", Text: "deploy done", Timestamp: "1700000000.000100"}},
			Total:   1,
		}
		ms.EXPECT().SearchMessagesContext(gomock.Any(), "deploy in:#ops", slack.SearchParameters{
			Sort:          "timestamp",
			SortDirection: "desc",
			Count:         20,
			Page:          1,
		}).Return(sm, nil)

		w := NewWorkspace(ms, WithLimits(testLimits))
		got, err := w.SearchMessages(t.Context(), "deploy in:#ops", 20)
		require.NoError(t, err)
		assert.Equal(t, sm, got)
	})
	t.Run("unclassified error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ms := mock_client.NewMockSlack(ctrl)
		cause := errors.New("not_allowed_token_type")
		ms.EXPECT().SearchMessagesContext(gomock.Any(), "x", gomock.Any()).Return(nil, cause)

		w := NewWorkspace(ms, WithLimits(testLimits))
		_, err := w.SearchMessages(t.Context(), "x", 1)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "search.messages: not_allowed_token_type")
	})
}

func fixtureChannel(id, name string) slack.Channel {
	var ch slack.Channel
	ch.ID = id
	ch.Name = name
	return ch
}

func fixtureMessage(ts, user, text string) slack.Message {
	var m slack.Message
	m.Timestamp = ts
	m.User = user
	m.Text = text
	return m
}

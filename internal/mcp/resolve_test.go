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
	"errors"
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/client/mock_client"
)

func testChannel(id, name string, private bool, members int, purpose string) slack.Channel {
	var ch slack.Channel
	ch.ID = id
	ch.Name = name
	ch.IsPrivate = private
	ch.NumMembers = members
	ch.Purpose.Value = purpose
	return ch
}

func Test_resolveChannel(t *testing.T) {
	workspace := []slack.Channel{
		testChannel("C01", "general", false, 10, ""),
		testChannel("C02", "ops", false, 3, ""),
		testChannel("C03", "General", false, 1, ""),
	}
	tests := []struct {
		name      string
		ref       string
		vis       client.Visibility
		expectFn  func(m *mock_client.MockRemote)
		want      string
		wantErrIs error
	}{
		{
			name:     "channel ID makes no calls",
			ref:      "C0123ABCD",
			expectFn: func(m *mock_client.MockRemote) {},
			want:     "C0123ABCD",
		},
		{
			name:     "private channel ID makes no calls",
			ref:      "G0123ABCD",
			expectFn: func(m *mock_client.MockRemote) {},
			want:     "G0123ABCD",
		},
		{
			name: "name",
			ref:  "ops",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(workspace, nil)
			},
			want: "C02",
		},
		{
			name: "name is case sensitive",
			ref:  "General",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(workspace, nil)
			},
			want: "C03",
		},
		{
			name: "leading hash",
			ref:  "#general",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(workspace, nil)
			},
			want: "C01",
		},
		{
			name: "private visibility",
			ref:  "secret",
			vis:  client.VisibilityAll,
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityAll).
					Return(append(workspace, testChannel("G09", "secret", true, 2, "")), nil)
			},
			want: "G09",
		},
		{
			name: "lowercase name that looks like an id",
			ref:  "cafe",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(workspace, nil)
			},
			wantErrIs: ErrNotFound,
		},
		{
			name: "not found",
			ref:  "random",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(workspace, nil)
			},
			wantErrIs: ErrNotFound,
		},
		{
			name: "listing error",
			ref:  "random",
			expectFn: func(m *mock_client.MockRemote) {
				m.EXPECT().ListChannels(gomock.Any(), client.VisibilityPublic).Return(nil, client.ErrRateLimited)
			},
			wantErrIs: client.ErrRateLimited,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mock_client.NewMockRemote(ctrl)
			tt.expectFn(m)

			got, err := resolveChannel(t.Context(), m, tt.ref, tt.vis)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Kind: "channel", Name: "random"})
	assert.EqualError(t, err, `channel "random" not found`)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrUnknownTool))
}

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

package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValueAuth(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		cookie  string
		wantErr error
	}{
		{"bot token", testBotToken, "", nil},
		{"empty token", "", "", ErrNoToken},
		{"client token without cookie", testClientToken, "", ErrNoCookies},
		{"client token with cookie", testClientToken, "xoxd-abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prov, err := NewValueAuth(tt.token, tt.cookie)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.token, prov.SlackToken())
		})
	}
	t.Run("malformed token", func(t *testing.T) {
		_, err := NewValueAuth("not-a-token", "")
		assert.Error(t, err)
	})
}

func TestValueAuth_HTTPClient(t *testing.T) {
	t.Run("no cookies", func(t *testing.T) {
		prov, err := NewValueAuth(testBotToken, "")
		require.NoError(t, err)
		cl, err := prov.HTTPClient()
		require.NoError(t, err)
		assert.Nil(t, cl.Jar)
	})
	t.Run("cookies are in the jar", func(t *testing.T) {
		prov, err := NewValueAuth(testClientToken, "xoxd-abc")
		require.NoError(t, err)
		cl, err := prov.HTTPClient()
		require.NoError(t, err)
		require.NotNil(t, cl.Jar)
		u, _ := url.Parse("https://app.slack.com/api/conversations.list")
		var got string
		for _, c := range cl.Jar.Cookies(u) {
			if c.Name == "d" {
				got = c.Value
			}
		}
		assert.Equal(t, "xoxd-abc", got)
	})
}

func TestIsClientToken(t *testing.T) {
	assert.True(t, IsClientToken(testClientToken))
	assert.False(t, IsClientToken(testBotToken))
}

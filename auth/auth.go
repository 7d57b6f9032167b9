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

// Package auth provides the Slack credentials for the API client.
package auth

import (
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/rusq/slackmcp/internal/structures"
)

// SlackURL is the Slack URL that the session cookies are scoped to.
const SlackURL = "https://slack.com"

const clientTokenPrefix = "xoxc-"

// Provider is the interface for the Slack credentials provider.
type Provider interface {
	// SlackToken should return the Slack Token value.
	SlackToken() string
	// HTTPClient should return the HTTP client that is used to make the API
	// calls, with any session cookies attached.
	HTTPClient() (*http.Client, error)
	// Validate should return error, in case the token or cookies cannot be
	// retrieved.
	Validate() error
}

var (
	ErrNoToken   = errors.New("no token")
	ErrNoCookies = errors.New("no cookies")
)

type simpleProvider struct {
	Token  string
	Cookie []*http.Cookie
}

func (c simpleProvider) Validate() error {
	if c.Token == "" {
		return ErrNoToken
	}
	if err := structures.ValidateToken(c.Token); err != nil {
		return err
	}
	if IsClientToken(c.Token) && len(c.Cookie) == 0 {
		return ErrNoCookies
	}
	return nil
}

func (c simpleProvider) SlackToken() string {
	return c.Token
}

// HTTPClient returns the client with a cookie jar that holds the session
// cookies.  Bot and user tokens do not need cookies, and get a plain
// client.
func (c simpleProvider) HTTPClient() (*http.Client, error) {
	if len(c.Cookie) == 0 {
		return &http.Client{}, nil
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(SlackURL)
	if err != nil {
		return nil, err
	}
	jar.SetCookies(u, c.Cookie)
	return &http.Client{Jar: jar}, nil
}

// IsClientToken returns true if the token is a browser client token, which
// can only be used together with the "d" cookie.
func IsClientToken(token string) bool {
	return strings.HasPrefix(token, clientTokenPrefix)
}

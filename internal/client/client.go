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

// Package client contains the Slack API client used by the MCP server, and
// the read-only workspace operations built on top of it.
package client

import (
	"context"

	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/auth"
)

//go:generate mockgen -destination mock_client/mock_client.go . Slack,Remote

// Slack is an interface that defines the methods that a Slack client should
// provide.  It is the subset of the API that the server needs.
type Slack interface {
	AuthTestContext(ctx context.Context) (response *slack.AuthTestResponse, err error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) (channels []slack.Channel, nextCursor string, err error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	SearchMessagesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error)
}

var _ Slack = (*Client)(nil)

// Client wraps *slack.Client and caches the auth.test response captured on
// initialisation.
type Client struct {
	*slack.Client // promotes all Slack API methods
	wi            *slack.AuthTestResponse
}

// Wrap wraps a *slack.Client and returns a *Client that implements the Slack
// interface. Intended for testing.
func Wrap(cl *slack.Client) *Client {
	return &Client{
		Client: cl,
	}
}

type options struct {
	apiURL string
	debug  bool
}

type Option func(*options)

// WithAPIURL overrides the Slack API URL, i.e. to point the client to a
// test server.  The URL must end with a slash.
func WithAPIURL(u string) Option {
	return func(o *options) {
		o.apiURL = u
	}
}

// WithDebug enables the slack library debug output.
func WithDebug(b bool) Option {
	return func(o *options) {
		o.debug = b
	}
}

// New creates a new Client instance.  It validates the credentials and calls
// auth.test to ensure that the token is accepted by Slack.  If Slack rejects
// the token, *auth.Error is returned.
func New(ctx context.Context, prov auth.Provider, opts ...Option) (*Client, error) {
	if err := prov.Validate(); err != nil {
		return nil, err
	}
	var opt options
	for _, o := range opts {
		o(&opt)
	}

	hcl, err := prov.HTTPClient()
	if err != nil {
		return nil, err
	}
	sopts := []slack.Option{slack.OptionHTTPClient(hcl), slack.OptionDebug(opt.debug)}
	if opt.apiURL != "" {
		sopts = append(sopts, slack.OptionAPIURL(opt.apiURL))
	}
	scl := slack.New(prov.SlackToken(), sopts...)

	wi, err := scl.AuthTestContext(ctx)
	if err != nil {
		return nil, &auth.Error{Err: err}
	}
	return &Client{Client: scl, wi: wi}, nil
}

// AuthTestContext returns the cached workspace information that was captured
// on initialisation.  If the cache is empty it calls the API.
func (c *Client) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	if c.wi == nil {
		wi, err := c.Client.AuthTestContext(ctx)
		if err != nil {
			return nil, err
		}
		c.wi = wi
	}
	return c.wi, nil
}

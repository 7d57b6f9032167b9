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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/slackmcp/internal/client"
)

const serverName = "slack-mcp-assistant"

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the tool dispatcher.
type Server struct {
	mcp    *mcpsrv.MCPServer
	d      *Dispatcher
	logger *slog.Logger
}

type options struct {
	logger      *slog.Logger
	concurrency int
	private     bool
	version     string
	now         func() time.Time
}

// Option is the Server option.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.logger = lg
		}
	}
}

// WithConcurrency sets the maximum number of concurrent user lookups made
// while resolving the message authors.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithPrivate allows get_channel_messages to resolve the names of private
// channels.
func WithPrivate(b bool) Option {
	return func(o *options) {
		o.private = b
	}
}

// WithVersion sets the server version reported to the client.
func WithVersion(v string) Option {
	return func(o *options) {
		if v != "" {
			o.version = v
		}
	}
}

// New creates a new MCP server backed by the remote workspace.  The server is
// populated with all available tools but does not start listening until one of
// the Serve* methods is called.
func New(remote client.Remote, opts ...Option) *Server {
	o := options{
		logger:      slog.Default(),
		concurrency: defConcurrency,
		version:     "dev",
		now:         time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}

	d := NewDispatcher(o.logger,
		listChannels{remote: remote},
		getChannelMessages{
			remote:      remote,
			lg:          o.logger,
			concurrency: o.concurrency,
			private:     o.private,
			now:         o.now,
		},
		searchMessages{remote: remote},
	)

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		o.version,
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithRecovery(),
		mcpsrv.WithInstructions(instructions(d)),
	)
	mcpServer.AddTools(d.serverTools()...)

	return &Server{
		mcp:    mcpServer,
		d:      d,
		logger: o.logger,
	}
}

// instructions returns the server instructions that describe the tools to
// the connecting agent.
func instructions(d *Dispatcher) string {
	var names []string
	for _, t := range d.Tools() {
		names = append(names, t.Name())
	}
	return fmt.Sprintf(`You are connected to a read-only Slack MCP server.

Available tools: %s.

- list_channels lists the workspace channels.
- get_channel_messages returns the recent messages of a channel, given its name or ID.
- search_messages searches messages; use in_channel to limit the search to a channel.

Timestamps are ISO-8601 in UTC.  Failed calls return a text starting with "Error: ".
`, strings.Join(names, ", "))
}

// Dispatcher returns the tool dispatcher of the server.
func (s *Server) Dispatcher() *Dispatcher {
	return s.d
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.serveStdio(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, in, out); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8483".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

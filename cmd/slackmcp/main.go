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

// Command slackmcp runs the read-only Slack MCP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rusq/slackmcp/auth"
	"github.com/rusq/slackmcp/cmd/slackmcp/internal/cfg"
	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/mcp"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func main() {
	loadSecrets(secrets)

	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"slackmcp, %s\n"+
				"Read-only Slack MCP server: exposes list_channels, get_channel_messages\n"+
				"and search_messages tools to AI agents.\n\n"+
				"Usage:  %s [flags]\n\n",
			version, fs.Name())
		fs.PrintDefaults()
	}
	cfg.SetBaseFlags(fs)
	printVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *printVersion {
		fmt.Println(versionString())
		return
	}

	lg, stopLog, err := initLog(cfg.LogFile, cfg.LogJSON, cfg.Verbose)
	if err != nil {
		slog.Error("failed to initialise logging", "error", err)
		os.Exit(1)
	}
	defer stopLog()
	cfg.Log = lg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.SetFlags(fs)); err != nil {
		if auth.IsInvalidAuthErr(err) {
			lg.Error("Slack rejected the token, check SLACK_BOT_TOKEN or -token", "error", err)
		} else {
			lg.Error("slackmcp failed", "error", err)
		}
		stopLog()
		stop()
		os.Exit(1)
	}
}

// run connects to Slack and serves the MCP server over the selected
// transport until ctx is cancelled.  set contains the names of the flags that
// were set on the command line.
func run(ctx context.Context, set map[string]bool) error {
	if cfg.ConfigFile != "" {
		c, err := cfg.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("config %s: %w", cfg.ConfigFile, err)
		}
		c.Apply(set)
		cfg.Log.DebugContext(ctx, "configuration loaded", "filename", cfg.ConfigFile)
	}
	if cfg.SecretsFile != "" {
		token, cookie, err := auth.ParseDotEnv(cfg.SecretsFile)
		if err != nil {
			return fmt.Errorf("secrets %s: %w", cfg.SecretsFile, err)
		}
		cfg.SlackToken, cfg.SlackCookie = token, cookie
	}
	transport, err := parseTransport(cfg.Transport)
	if err != nil {
		return err
	}

	prov, err := auth.NewValueAuth(cfg.SlackToken, cfg.SlackCookie)
	if err != nil {
		if errors.Is(err, auth.ErrNoToken) {
			return errors.New("no Slack token: set SLACK_BOT_TOKEN or use -token")
		}
		return err
	}
	cl, err := client.New(ctx, prov, client.WithDebug(cfg.SlackDebug))
	if err != nil {
		return err
	}
	if wi, err := cl.AuthTestContext(ctx); err == nil {
		cfg.Log.InfoContext(ctx, "connected to slack", "team", wi.Team, "user", wi.User)
	}

	ws := client.NewWorkspace(cl, client.WithLimits(cfg.Limits), client.WithLogger(cfg.Log))
	srv := mcp.New(ws,
		mcp.WithLogger(cfg.Log),
		mcp.WithConcurrency(cfg.Concurrency),
		mcp.WithPrivate(cfg.Private),
		mcp.WithVersion(version),
	)

	switch transport {
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, cfg.Listen)
	default:
		return srv.ServeStdio(ctx)
	}
}

// parseTransport validates the transport name.
func parseTransport(s string) (mcp.Transport, error) {
	switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case mcp.TransportStdio, mcp.TransportHTTP:
		return t, nil
	case "":
		return mcp.TransportStdio, nil
	default:
		return "", fmt.Errorf("unknown transport %q, must be %q or %q", s, mcp.TransportStdio, mcp.TransportHTTP)
	}
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

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

// Package cfg holds the global configuration of the slackmcp command.
package cfg

import (
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/slackmcp/internal/network"
)

const (
	DefTransport   = "stdio"
	DefListen      = "127.0.0.1:8483"
	DefConcurrency = 8
)

var (
	LogFile string
	LogJSON bool
	Verbose bool

	ConfigFile  string
	SecretsFile string

	SlackToken  string
	SlackCookie string
	SlackDebug  bool

	Transport   string
	Listen      string
	Private     bool
	Concurrency int

	Limits = network.DefLimits

	Log = slog.Default()
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet) {
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&LogJSON, "log-json", osenv.Value("JSON_LOG", false), "log messages in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	fs.StringVar(&ConfigFile, "config", osenv.Value("SLACKMCP_CONFIG", ""), "configuration `file` (TOML) with server settings and Slack API limits overrides")
	fs.StringVar(&SecretsFile, "secrets", "", "read the token and cookie from the dotenv `file`\n(keys: SLACK_BOT_TOKEN or SLACK_TOKEN, SLACK_COOKIE)")

	fs.StringVar(&SlackToken, "token", osenv.Secret("SLACK_BOT_TOKEN", osenv.Secret("SLACK_TOKEN", "")), "Slack `token`\n(environment: SLACK_BOT_TOKEN or SLACK_TOKEN)")
	fs.StringVar(&SlackCookie, "cookie", osenv.Secret("SLACK_COOKIE", ""), "d= cookie `value`, required for the client (xoxc-) tokens\n(environment: SLACK_COOKIE)")
	fs.BoolVar(&SlackDebug, "slack-debug", osenv.Value("SLACK_DEBUG", false), "enable the Slack API client debug output")

	fs.StringVar(&Transport, "transport", osenv.Value("MCP_TRANSPORT", DefTransport), "MCP `transport`: stdio or http")
	fs.StringVar(&Listen, "listen", osenv.Value("MCP_LISTEN", DefListen), "`address` to listen on for the http transport")
	fs.BoolVar(&Private, "private", false, "allow get_channel_messages to resolve the names of private channels")
	fs.IntVar(&Concurrency, "concurrency", DefConcurrency, "maximum `number` of concurrent user lookups per call")
}

// SetFlags returns the names of the flags that were set on the command
// line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

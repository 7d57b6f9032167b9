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

// Package mcp implements a Model Context Protocol (MCP) server that exposes
// read-only Slack workspace operations as tools that AI agents can call:
//
//   - list_channels        – list the workspace channels;
//   - get_channel_messages – fetch the recent history of a channel;
//   - search_messages      – run a Slack search query.
//
// Each call is a single-shot translation: the arguments are validated, the
// channel name (if any) is resolved to the channel ID, the Slack API is called
// for a single page of results, message authors are resolved to display names
// concurrently, and the result is normalised into a stable JSON schema.  No
// state is kept between the calls.
//
// Any failure is reported to the agent as a tool error result, the server
// never returns a transport-level error for a failed tool call.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default);
//   - http   – Streamable HTTP transport.
package mcp

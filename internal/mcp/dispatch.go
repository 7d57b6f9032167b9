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

// In this file: tool catalog and dispatch.

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"runtime/debug"
	"slices"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// Tool is a named operation exposed to the agent.
type Tool interface {
	// Name returns the tool name, as advertised to the agent.
	Name() string
	// Definition returns the tool definition with the input schema.
	Definition() mcplib.Tool
	// Execute runs the tool with the given arguments and returns the
	// JSON-serialisable payload.
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// Request is the tool call request.
type Request struct {
	Name      string
	Arguments map[string]any
}

// Outcome is the result of the tool call.  Exactly one of Payload or Err is
// set.
type Outcome struct {
	Payload any
	Err     error
}

// Failed returns true if the call failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Result renders the outcome as the MCP tool call result.  The successful
// payload is rendered as indented JSON, the failure as "Error: <message>"
// with IsError set.
func (o Outcome) Result() *mcplib.CallToolResult {
	if o.Err != nil {
		return resultErr(o.Err)
	}
	data, err := json.MarshalIndent(o.Payload, "", "  ")
	if err != nil {
		return resultErr(fmt.Errorf("encoding result: %w", err))
	}
	return mcplib.NewToolResultText(string(data))
}

// resultErr wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent("Error: " + err.Error())},
		IsError: true,
	}
}

// Dispatcher routes the tool calls to the tools.
type Dispatcher struct {
	tools map[string]Tool
	lg    *slog.Logger
}

// NewDispatcher creates a dispatcher for the given tools.  It panics if two
// tools have the same name.
func NewDispatcher(lg *slog.Logger, tools ...Tool) *Dispatcher {
	if lg == nil {
		lg = slog.Default()
	}
	d := &Dispatcher{
		tools: make(map[string]Tool, len(tools)),
		lg:    lg,
	}
	for _, t := range tools {
		name := t.Name()
		if _, dup := d.tools[name]; dup {
			panic(fmt.Sprintf("mcp: duplicate tool %q", name))
		}
		d.tools[name] = t
	}
	return d
}

// Dispatch runs the tool named in the request.  It always returns a completed
// Outcome: errors and panics of the tool are converted into a failed Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (out Outcome) {
	t, ok := d.tools[req.Name]
	if !ok {
		d.lg.WarnContext(ctx, "unknown tool", "tool", req.Name)
		return Outcome{Err: &UnknownToolError{Name: req.Name}}
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.lg.ErrorContext(ctx, "tool panicked", "tool", req.Name, "panic", r, "stack", string(debug.Stack()))
			out = Outcome{Err: fmt.Errorf("%s: internal error: %v", req.Name, r)}
		}
		lg := d.lg.With("tool", req.Name, "took", time.Since(start))
		if out.Failed() {
			lg.WarnContext(ctx, "tool failed", "error", out.Err)
		} else {
			lg.DebugContext(ctx, "tool completed")
		}
	}()

	payload, err := t.Execute(ctx, req.Arguments)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Payload: payload}
}

// Tools returns the tool catalog sorted by name.
func (d *Dispatcher) Tools() []Tool {
	return slices.SortedFunc(maps.Values(d.tools), func(a, b Tool) int {
		return cmp.Compare(a.Name(), b.Name())
	})
}

// serverTools returns the catalog as the mcp-go server tools.  Handlers never
// return a Go error: failures are reported in the result.
func (d *Dispatcher) serverTools() []mcpsrv.ServerTool {
	tools := d.Tools()
	st := make([]mcpsrv.ServerTool, 0, len(tools))
	for _, t := range tools {
		st = append(st, mcpsrv.ServerTool{Tool: t.Definition(), Handler: d.handler(t.Name())})
	}
	return st
}

func (d *Dispatcher) handler(name string) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return d.Dispatch(ctx, Request{Name: name, Arguments: req.GetArguments()}).Result(), nil
	}
}

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

// In this file: tool argument extraction and validation.

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rusq/slackmcp/internal/validation"
)

func argError(name string, format string, a ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, name, fmt.Sprintf(format, a...))
}

// stringArg extracts a named string argument.  Missing or null argument
// yields an empty string.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", argError(name, "must be a string, got %T", v)
	}
	return s, nil
}

// intArg extracts a named integer argument.  The MCP protocol serialises
// numbers as float64, and some agents send numbers as strings, both are
// accepted as long as the value is integral.
func intArg(args map[string]any, name string, defaultVal int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, argError(name, "must be an integer, got %v", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, argError(name, "must be an integer, got %s", n)
		}
		return int(i), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return defaultVal, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, argError(name, "must be an integer, got %q", n)
		}
		return i, nil
	}
	return 0, argError(name, "must be a number, got %T", v)
}

// boolArg extracts a named boolean argument.  Strings "true", "false", "1",
// "0" and alike are accepted.
func boolArg(args map[string]any, name string, defaultVal bool) (bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if strings.TrimSpace(b) == "" {
			return defaultVal, nil
		}
		pb, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, argError(name, "must be a boolean, got %q", b)
		}
		return pb, nil
	}
	return false, argError(name, "must be a boolean, got %T", v)
}

// validateArgs validates the decoded arguments struct.
func validateArgs(v any) error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(validation.Messages(err), "; "))
	}
	return nil
}

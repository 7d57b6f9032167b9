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
	"fmt"
)

var (
	// ErrUnknownTool is returned when the requested tool is not in the
	// catalog.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrNotFound is returned when the channel reference does not match any
	// channel.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned when the tool arguments are missing,
	// have the wrong type or fail validation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnknownToolError is the error returned for the tool name that is not
// registered with the Dispatcher.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}

// NotFoundError is returned when the entity of the given Kind could not be
// found by Name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

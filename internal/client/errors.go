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

package client

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rusq/slack"
)

// Classes of the API errors.  Use errors.Is to check the class of the error
// returned by the Workspace methods.
var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited")
	ErrTransient   = errors.New("transient error")
)

// notFoundCodes are the Slack error codes that mean that the requested
// entity does not exist or is not visible to the token.
var notFoundCodes = map[string]bool{
	"channel_not_found": true,
	"user_not_found":    true,
	"not_in_channel":    true,
	"users_not_found":   true,
}

// APIError is the error returned by the Workspace methods.  Kind is one of
// the error classes, or nil, if the error could not be classified.
type APIError struct {
	Method string
	Kind   error
	Err    error
}

func (e *APIError) Error() string {
	return e.Method + ": " + e.Err.Error()
}

func (e *APIError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// classify wraps the error returned by the API method into APIError.
func classify(method string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{Method: method, Kind: kindOf(err), Err: err}
}

func kindOf(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	var (
		rle *slack.RateLimitedError
		ser slack.SlackErrorResponse
		sce slack.StatusCodeError
		ne  net.Error
	)
	switch {
	case errors.As(err, &rle):
		return ErrRateLimited
	case errors.As(err, &ser):
		if notFoundCodes[ser.Err] {
			return ErrNotFound
		}
		if ser.Err == "ratelimited" {
			return ErrRateLimited
		}
	case errors.As(err, &sce):
		if sce.Code == http.StatusTooManyRequests {
			return ErrRateLimited
		}
		if isRecoverable(sce.Code) {
			return ErrTransient
		}
	case errors.As(err, &ne):
		return ErrTransient
	}
	return nil
}

// isRecoverable returns true if the status code is a recoverable error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != 501) || statusCode == 408
}

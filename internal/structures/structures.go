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

// Package structures provides functions to parse and validate Slack
// identifiers and timestamps.
package structures

import (
	"errors"
	"regexp"
	"strings"
)

// tokenRE is a loose regular expression to match Slack API tokens.
// a - app, b - bot, c - client, e - export, p - user, r - refresh.
var tokenRE = regexp.MustCompile(`^xox[abcepr]-[0-9A-Za-z-]+$`)

var errInvalidToken = errors.New("token must start with xoxa-, xoxb-, xoxc-, xoxe-, xoxp- or xoxr- followed by alphanumeric groups separated by dashes")

// ValidateToken returns an error if the token doesn't look like a Slack
// token.
func ValidateToken(token string) error {
	if !tokenRE.MatchString(token) {
		return errInvalidToken
	}
	return nil
}

// channelIDRE matches public (C) and private (G) conversation IDs.
var channelIDRE = regexp.MustCompile(`^[CG][A-Z0-9]+$`)

// IsChannelID reports whether ref is a conversation ID rather than a channel
// name.  Slack channel names are always lowercase, so the uppercase prefix
// and alphabet are enough to tell them apart.
func IsChannelID(ref string) bool {
	return channelIDRE.MatchString(ref)
}

// ChannelName strips the leading "#" from the channel reference, if any.
func ChannelName(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), "#")
}

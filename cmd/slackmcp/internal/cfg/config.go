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

package cfg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rusq/slackmcp/internal/network"
	"github.com/rusq/slackmcp/internal/validation"
)

var ErrConfigInvalid = errors.New("config validation failed")

// Config is the configuration file.
type Config struct {
	Server ServerConfig   `toml:"server"`
	Slack  SlackConfig    `toml:"slack"`
	Limits network.Limits `toml:"limits"`
}

type ServerConfig struct {
	Transport string `toml:"transport" validate:"omitempty,oneof=stdio http"`
	Listen    string `toml:"listen" validate:"omitempty,hostname_port"`
}

type SlackConfig struct {
	// Private is a pointer to distinguish "false" from "not set".
	Private     *bool `toml:"private"`
	Concurrency int   `toml:"concurrency" validate:"gte=0,lte=64"`
}

// LoadConfig reads, parses and validates the config file.  Limits that are
// not set in the file keep their default values.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (*Config, error) {
	c := Config{Limits: network.DefLimits}
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	if err := validation.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(validation.Messages(err), "; "))
	}
	return &c, nil
}

// Apply applies the configuration to the global variables.  Settings, which
// flags are in set, were given on the command line and are not overridden.
func (c *Config) Apply(set map[string]bool) {
	if c.Server.Transport != "" && !set["transport"] {
		Transport = c.Server.Transport
	}
	if c.Server.Listen != "" && !set["listen"] {
		Listen = c.Server.Listen
	}
	if c.Slack.Private != nil && !set["private"] {
		Private = *c.Slack.Private
	}
	if c.Slack.Concurrency > 0 && !set["concurrency"] {
		Concurrency = c.Slack.Concurrency
	}
	Limits = c.Limits
}

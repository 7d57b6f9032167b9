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

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
)

// initLog initialises the logging.  If the filename is not empty, the file
// will be opened, and the logger output will be switched to that file,
// otherwise messages go to STDERR, as STDOUT is used by the stdio transport.
// Returns the initialised logger and the stop function that closes the log
// file.  The stop function is safe to call more than once.
func initLog(filename string, jsonHandler bool, verbose bool) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	stop := func() {}
	if filename != "" {
		lf, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return slog.Default(), stop, fmt.Errorf("failed to create the log file: %w", err)
		}
		log.SetOutput(lf) // redirect the standard log to the file just in case, panics will be logged there.
		w = lf
		var closed bool
		stop = func() {
			if closed {
				return
			}
			closed = true
			if err := lf.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close the log file: %s\n", err)
			}
		}
	}

	sl := slog.New(newHandler(w, jsonHandler, verbose))
	slog.SetDefault(sl)
	return sl, stop, nil
}

func newHandler(w io.Writer, jsonHandler bool, verbose bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if jsonHandler {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

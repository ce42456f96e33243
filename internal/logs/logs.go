// This file is part of turing - https://github.com/db47h/turing
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logs builds the loggers used by the command line tools.
package logs

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	Level  slog.Level // minimum level of the terminal handler
	Stderr io.Writer  // terminal output, text format
	File   io.Writer  // optional log file, JSON format, all levels
}

// New returns a logger writing text records at opts.Level and above to
// opts.Stderr, and, if opts.File is not nil, every record as JSON to
// opts.File.
func New(opts Options) *slog.Logger {
	var handlers []slog.Handler
	if opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{
			Level: opts.Level,
		}))
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// ParseLevel parses a level name: debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("invalid log level %q: must be debug, info, warn or error", s)
}

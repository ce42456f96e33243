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

// Package session runs a Turing machine program against a batch of tapes.
//
// Tapes are read one per line. Each tape runs on a fresh vm.Instance, so no
// run can observe the tape, alphabet or flags of another; the program is the
// only shared state. Runs are strictly sequential.
package session

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/turing/internal/tmi"
	"github.com/db47h/turing/vm"
)

// Totals holds the counters accumulated over all tapes.
type Totals struct {
	Tapes        int
	Moves        int64
	Instructions int64
}

// Add adds the counters of a run to t.
func (t *Totals) Add(s vm.Stats) {
	t.Tapes++
	t.Moves += s.Moves
	t.Instructions += s.Instructions
}

// WriteReport writes the totals report to w.
func (t Totals) WriteReport(w io.Writer) error {
	ew := tmi.NewErrWriter(w)
	ew.WriteString("Totals across all tapes...\n")
	ew.WriteString("       moves: ")
	ew.WriteString(strconv.FormatInt(t.Moves, 10))
	ew.WriteString("\ninstructions: ")
	ew.WriteString(strconv.FormatInt(t.Instructions, 10))
	ew.WriteByte('\n')
	return ew.Err
}

type config struct {
	vmOpts []vm.Option
	onTape func(line int, i *vm.Instance)
	log    *slog.Logger
}

// Option interface
type Option func(*config)

// VMOptions sets the options used to create every vm.Instance.
func VMOptions(opts ...vm.Option) Option {
	return func(c *config) { c.vmOpts = append(c.vmOpts, opts...) }
}

// OnTape registers a function called after each run, once the run report has
// been written. line is the 1-based line number of the tape.
func OnTape(fn func(line int, i *vm.Instance)) Option {
	return func(c *config) { c.onTape = fn }
}

// Logger sets the logger for per-tape debug messages. A nil logger is
// ignored.
func Logger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// Run runs prog against every tape read from tapes, in order, writing each
// run report and then the totals report to out. Tape lines may be of any
// length.
//
// Run stops at the first error: a read error, a write error, or a crash of the
// machine. In that case, the returned Totals only account for the tapes that
// completed, and the totals report is not written.
func Run(prog vm.Program, tapes io.Reader, out io.Writer, opts ...Option) (Totals, error) {
	c := config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}

	var t Totals
	r := bufio.NewReader(tapes)
	for line := 1; ; line++ {
		b, rerr := r.ReadBytes('\n')
		if rerr != nil && rerr != io.EOF {
			return t, errors.Wrap(rerr, "tape read failed")
		}
		if len(b) == 0 && rerr == io.EOF {
			break
		}
		b = bytes.TrimSuffix(bytes.TrimSuffix(b, []byte{'\n'}), []byte{'\r'})
		i, err := vm.New(prog, vm.NewTape(string(b)), c.vmOpts...)
		if err != nil {
			return t, err
		}
		st, err := i.Run()
		if err != nil {
			return t, errors.Wrapf(err, "tape %d", line)
		}
		c.log.Debug("tape done", "line", line, "state", i.State(), "moves", st.Moves, "instructions", st.Instructions, "fault", i.Fault())
		if err = i.WriteReport(out); err != nil {
			return t, err
		}
		t.Add(st)
		if c.onTape != nil {
			c.onTape(line, i)
		}
		if rerr == io.EOF {
			break
		}
	}
	return t, t.WriteReport(out)
}

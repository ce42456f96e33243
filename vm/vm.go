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

package vm

import (
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
)

// State is the execution state of an Instance.
type State int

// Execution states. Halted and Failed are terminal.
const (
	Running State = iota
	Halted
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Failed:
		return "Failed"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Flags is the comparison flag register. OR is set by cmp but has no effect
// on any other instruction.
type Flags struct {
	EQ, NE, OR bool
}

// Stats holds the counters of a single run.
type Stats struct {
	Moves        int64 // head moves
	Instructions int64 // instructions executed
}

// Instance represents a Turing machine running one program against one tape.
//
// An Instance is single use: create a new one for every tape.
type Instance struct {
	IP       int   // Instruction Pointer
	Head     int   // Tape head position, always in [0, Tape.Len())
	Tape     *Tape // Tape contents
	prog     Program
	alpha    [256]bool
	flags    Flags
	state    State
	fault    error
	stats    Stats
	maxSteps int64
	compat   bool
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Logger sets the logger used for diagnostics. The default discards all
// messages.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// MaxSteps limits the number of instructions a run may execute. Once the limit
// is reached, the run fails with ErrStepLimit. The default, 0, means no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Compat enables or disables compatibility mode.
//
// By default, a jump with neither condition bit set or an unknown opcode fails
// the run. In compatibility mode, the diagnostic is logged and the instruction
// pointer left as is, so the same instruction executes again. Unless MaxSteps
// is set, such a run never terminates.
func Compat(on bool) Option {
	return func(i *Instance) error { i.compat = on; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Instance, ready to run prog against tape. A nil tape is
// replaced by a tape holding a single blank.
//
// The program is not copied and must not be modified while in use. The
// alphabet starts with only the blank symbol.
func New(prog Program, tape *Tape, opts ...Option) (*Instance, error) {
	if tape == nil {
		tape = NewTape("")
	}
	i := &Instance{
		Tape: tape,
		prog: prog,
		log:  slog.New(slog.DiscardHandler),
	}
	i.alpha[Blank] = true
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// State returns the execution state.
func (i *Instance) State() State { return i.state }

// Flags returns the flag register.
func (i *Instance) Flags() Flags { return i.flags }

// Stats returns the counters of the run so far.
func (i *Instance) Stats() Stats { return i.stats }

// Fault returns the reason for a Failed state, or nil if the run is not
// Failed or was stopped by a stop instruction or by reaching the end of the
// program. The returned error is an *IllegalSymbolError or an *OpcodeError.
func (i *Instance) Fault() error { return i.fault }

// Program returns the program memory.
func (i *Instance) Program() Program { return i.prog }

// InAlphabet reports whether c is part of the alphabet.
func (i *Instance) InAlphabet(c byte) bool { return i.alpha[c] }

// Alphabet returns the symbols in the alphabet, in ascending order.
func (i *Instance) Alphabet() []byte {
	var a []byte
	for c, ok := range i.alpha {
		if ok {
			a = append(a, byte(c))
		}
	}
	return a
}

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

import "github.com/pkg/errors"

// Step executes the instruction at IP and reports whether one was executed.
//
// Step returns false once the run is over: the state is no longer Running, or
// IP addresses a zero word (or lies outside the program), in which case the
// state changes to Failed. Reaching the step limit also fails the run without
// executing anything.
func (i *Instance) Step() bool {
	if i.state != Running {
		return false
	}
	w := i.prog.At(i.IP)
	if w == 0 {
		i.state = Failed
		return false
	}
	if i.maxSteps > 0 && i.stats.Instructions >= i.maxSteps {
		i.log.Warn("step limit reached", "ip", i.IP, "steps", i.stats.Instructions)
		i.fail(&OpcodeError{IP: i.IP, Word: w, Err: ErrStepLimit})
		return false
	}
	i.exec(w)
	i.stats.Instructions++
	return true
}

// Run runs the program until it halts or fails and returns the run counters.
//
// The outcome of the run is given by State and Fault. A non-nil error is only
// returned if the machine crashed, in which case the state is Failed and IP
// points to the offending instruction.
func (i *Instance) Run() (st Stats, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @ip=%d/%d, head %d/%d", i.IP, len(i.prog), i.Head, i.Tape.Len())
				i.state = Failed
				st = i.stats
			default:
				panic(e)
			}
		}
	}()
	for i.Step() {
	}
	return i.stats, nil
}

func (i *Instance) exec(w Word) {
	in := Decode(w)
	switch in.Op {
	case OpAlpha:
		i.alpha[in.Symbol] = true
		i.IP++
	case OpCmp:
		i.flags.OR = in.Or
		c := i.Tape.At(i.Head)
		switch {
		case in.Blank:
			i.compare(c == Blank)
		case !i.alpha[c]:
			i.fail(&IllegalSymbolError{IP: i.IP, Symbol: c})
			return
		default:
			i.compare(c == in.Symbol)
		}
		i.IP++
	case OpJmp:
		switch {
		case in.Eq && in.Ne:
			i.jump(in.Addr)
		case in.Eq:
			if i.flags.EQ {
				i.jump(in.Addr)
			} else {
				i.IP++
			}
		case in.Ne:
			if i.flags.NE {
				i.jump(in.Addr)
			} else {
				i.IP++
			}
		default:
			i.log.Warn("malformed jump", "ip", i.IP, "word", uint16(w))
			i.bad(w, ErrMalformedJump)
		}
	case OpDraw:
		if in.Blank {
			i.Tape.Set(i.Head, Blank)
		} else {
			i.Tape.Set(i.Head, in.Symbol)
		}
		i.IP++
	case OpMove:
		if in.Amount < 0 {
			if i.Head == 0 {
				// the new cell becomes cell 0, right under the head
				i.Tape.PushFront(Blank)
			} else {
				i.Head--
			}
		} else {
			if i.Head == i.Tape.Len()-1 {
				i.Tape.PushBack(Blank)
			}
			i.Head++
		}
		i.stats.Moves++
		i.IP++
	case OpStop:
		if in.Halt {
			i.state = Halted
		} else {
			i.state = Failed
		}
	default:
		i.log.Warn("unknown opcode", "op", uint8(in.Op), "ip", i.IP)
		i.bad(w, ErrUnknownOpcode)
	}
}

// compare sets EQ or NE. The other flag is left untouched; both are only
// cleared by a taken jump.
func (i *Instance) compare(eq bool) {
	if eq {
		i.flags.EQ = true
	} else {
		i.flags.NE = true
	}
}

func (i *Instance) jump(addr int) {
	i.flags.EQ, i.flags.NE = false, false
	i.IP = addr
}

// bad handles malformed jumps and unknown opcodes. In compatibility mode, the
// IP does not move.
func (i *Instance) bad(w Word, err error) {
	if i.compat {
		return
	}
	i.fail(&OpcodeError{IP: i.IP, Word: w, Err: err})
}

func (i *Instance) fail(err error) {
	i.state = Failed
	i.fault = err
}

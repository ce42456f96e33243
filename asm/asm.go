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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/turing/internal/tmi"
	"github.com/db47h/turing/vm"
)

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// Error is an assembly error at a given position.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for n := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[n].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	prog, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// Disassemble writes a disassembly of the word at position pc in the given
// program to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(prog vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := tmi.NewErrWriter(w)
	ew.WriteString(disassemble(prog[pc]))
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all words in the given program to the
// specified io.Writer. The base argument specifies the real address of the
// first word (prog[0]). It will return any write error.
func DisassembleAll(prog vm.Program, base int, w io.Writer) error {
	ew := tmi.NewErrWriter(w)
	for pc := 0; pc < len(prog); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(prog, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

func disassemble(w vm.Word) string {
	in := vm.Decode(w)
	switch in.Op {
	case vm.OpAlpha:
		if in.Symbol == vm.Blank {
			return "alpha blank"
		}
		return "alpha " + symbol(in.Symbol)
	case vm.OpCmp:
		m := "cmp "
		if in.Or {
			m = "cmpor "
		}
		if in.Blank {
			return m + "blank"
		}
		return m + symbol(in.Symbol)
	case vm.OpJmp:
		addr := strconv.Itoa(in.Addr)
		switch {
		case in.Eq && in.Ne:
			return "jmp " + addr
		case in.Eq:
			return "jeq " + addr
		case in.Ne:
			return "jne " + addr
		}
	case vm.OpDraw:
		if in.Blank {
			return "draw blank"
		}
		return "draw " + symbol(in.Symbol)
	case vm.OpMove:
		switch in.Amount {
		case -1:
			return "left"
		case 1:
			return "right"
		}
		return "move " + strconv.Itoa(int(in.Amount))
	case vm.OpStop:
		if in.Halt {
			return "halt"
		}
		return "fail"
	}
	return fmt.Sprintf(".dat %#04x", uint16(w))
}

// symbol returns a char literal for printable symbols that the parser can
// read back, and a plain number for anything else.
func symbol(c byte) string {
	if c > ' ' && c < 0x7f && c != '\'' && c != '\\' {
		return "'" + string(rune(c)) + "'"
	}
	return strconv.Itoa(int(c))
}

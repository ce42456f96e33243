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

import "strconv"

// Word is a raw instruction word as stored in program memory. The all-zero
// word marks the end of a program.
//
// Bit layout:
//
//	bits	field
//	----	-----------------------------------------------------------
//	0-2	opcode
//	3	jmp: eq     cmp: or       stop: halt
//	4	jmp: ne     cmp: blank    draw: blank
//	5-15	jmp: target address
//	8-15	alpha, cmp, draw: symbol    move: signed amount
type Word uint16

// Opcode identifies an instruction.
type Opcode uint8

// Turing machine opcodes. Opcode 0 is never used so that every valid
// instruction encodes to a non-zero Word.
const (
	OpAlpha Opcode = iota + 1
	OpCmp
	OpJmp
	OpDraw
	OpMove
	OpStop
)

const (
	opMask    = 0x7
	bit3      = 1 << 3
	bit4      = 1 << 4
	addrShift = 5
	symShift  = 8
)

// MaxAddress is the highest jump target that fits in a Word.
const MaxAddress = 1<<(16-addrShift) - 1

var opcodes = [...]string{
	"",
	"alpha",
	"cmp",
	"jmp",
	"draw",
	"move",
	"stop",
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) && opcodes[op] != "" {
		return opcodes[op]
	}
	return "opcode(" + strconv.Itoa(int(op)) + ")"
}

// Instruction is a decoded Word. Only the fields relevant to Op are set.
type Instruction struct {
	Op     Opcode
	Symbol byte // alpha, cmp, draw
	Blank  bool // cmp, draw: use the blank symbol instead of Symbol
	Or     bool // cmp
	Eq, Ne bool // jmp
	Addr   int  // jmp
	Amount int8 // move: < 0 moves left, >= 0 moves right
	Halt   bool // stop
}

// Decode splits w into its fields. It never fails: a word with an unknown
// opcode decodes to an Instruction with only Op set, leaving it to the caller
// to decide what to do with it.
func Decode(w Word) Instruction {
	in := Instruction{Op: Opcode(w & opMask)}
	switch in.Op {
	case OpAlpha:
		in.Symbol = byte(w >> symShift)
	case OpCmp:
		in.Or = w&bit3 != 0
		in.Blank = w&bit4 != 0
		in.Symbol = byte(w >> symShift)
	case OpJmp:
		in.Eq = w&bit3 != 0
		in.Ne = w&bit4 != 0
		in.Addr = int(w >> addrShift)
	case OpDraw:
		in.Blank = w&bit4 != 0
		in.Symbol = byte(w >> symShift)
	case OpMove:
		in.Amount = int8(w >> symShift)
	case OpStop:
		in.Halt = w&bit3 != 0
	}
	return in
}

// Encode returns the Word for in. Fields that do not apply to in.Op are
// ignored and jump addresses are truncated to MaxAddress.
func (in Instruction) Encode() Word {
	w := Word(in.Op) & opMask
	switch in.Op {
	case OpAlpha:
		w |= Word(in.Symbol) << symShift
	case OpCmp:
		w |= flag(in.Or, bit3) | flag(in.Blank, bit4) | Word(in.Symbol)<<symShift
	case OpJmp:
		w |= flag(in.Eq, bit3) | flag(in.Ne, bit4) | Word(in.Addr&MaxAddress)<<addrShift
	case OpDraw:
		w |= flag(in.Blank, bit4) | Word(in.Symbol)<<symShift
	case OpMove:
		w |= Word(uint8(in.Amount)) << symShift
	case OpStop:
		w |= flag(in.Halt, bit3)
	}
	return w
}

func flag(b bool, bit Word) Word {
	if b {
		return bit
	}
	return 0
}

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

// Package vm implements a Turing machine interpreter.
//
// A program is a sequence of 16 bits instruction Words (see Word for the bit
// layout) loaded once with Load or Read. Each tape is run by a fresh Instance:
//
//	prog, err := vm.Load("program.bin", vm.DefaultProgramWords)
//	// ...
//	i, err := vm.New(prog, vm.NewTape("abba"))
//	// ...
//	stats, err := i.Run()
//
// The machine has six instructions:
//
//	opcode	fields			description
//	------	------			-----------------------------------------------------
//	alpha	symbol			add symbol to the alphabet
//	cmp	or, blank, symbol	compare the symbol under the head with blank or with
//					symbol and set EQ or NE. Fails if symbol mode is used
//					and the symbol under the head is not in the alphabet
//	jmp	eq, ne, address		jump to address. eq and ne: always. eq only: if EQ is
//					set. ne only: if NE is set. A taken jump clears both
//					flags
//	draw	blank, symbol		write blank or symbol under the head
//	move	amount			move the head left if amount < 0, else right. The
//					tape grows by one blank cell when the head moves past
//					either end
//	stop	halt			stop. The run is Halted if halt is set, else Failed
//
// A run also ends (Failed) when the instruction pointer reaches a zero word.
//
// The instruction pointer is not incremented in a single place, rather each
// opcode deals with it as needed. The instruction counter is incremented after
// every executed instruction, stop included.
package vm

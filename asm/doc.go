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

// Package asm provides utility functions to assemble and disassemble Turing
// machine programs.
//
// Supported assembler mnemonics:
//
//	mnemonic	arg	description
//	--------	---	----------------------------------------------------------
//	alpha		sym	add sym to the alphabet. "alpha blank" adds the blank symbol
//	cmp		sym	compare the symbol under the head with sym, or with the
//				blank symbol for "cmp blank"
//	cmpor		sym	same as cmp, with the or bit set
//	jmp		addr	unconditional jump
//	jeq		addr	jump if EQ is set
//	jne		addr	jump if NE is set
//	draw		sym	write sym under the head. "draw blank" writes a blank
//	left			move the head left
//	right			move the head right
//	move		n	move the head left if n < 0, else right
//	halt			stop, accepting the tape
//	fail			stop, rejecting the tape
//
// Symbols are char literals ('a', '\n', '\x20'), integers in the range
// 0-255, or constants. Note that a space cannot be written as ' ' since
// whitespace separates tokens; use blank or '\x20'.
//
// Addresses are integers, constants or labels.
//
// Comments:
//
// Comments are placed between parentheses, and parentheses must be surrounded
// by white space:
//
//	( this is a comment )
//
// Labels:
//
// Labels are defined by prefixing them with a colon and referenced without it.
// Forward references are allowed:
//
//	:loop	cmp blank
//		jeq done
//		right
//		jmp loop
//	:done	halt
//
// Directives:
//
//	.org addr	set the compilation address
//	.dat n		compile the raw 16 bits word n
//	.equ NAME n	define the constant NAME with value n
//
// Words left unassigned by a .org gap are zero, and a zero word ends a
// program.
package asm

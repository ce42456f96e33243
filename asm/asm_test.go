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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/turing/asm"
	"github.com/db47h/turing/vm"
)

func in(in vm.Instruction) vm.Word { return in.Encode() }

func TestAssemble(t *testing.T) {
	code := `
		.equ A 'a'
		( forward and backward references )
:start	alpha A
		cmp blank
		jeq end
		cmpor 'b'
		jne start
		draw '\x41'
		draw blank
		left right move -3 move 0x10
		fail
:end	halt
		alpha blank
		jmp 0
		.dat 0xffff
`
	prog, err := asm.Assemble("test", strings.NewReader(code))
	require.NoError(t, err)
	require.Equal(t, vm.Program{
		in(vm.Instruction{Op: vm.OpAlpha, Symbol: 'a'}),
		in(vm.Instruction{Op: vm.OpCmp, Blank: true}),
		in(vm.Instruction{Op: vm.OpJmp, Eq: true, Addr: 12}),
		in(vm.Instruction{Op: vm.OpCmp, Or: true, Symbol: 'b'}),
		in(vm.Instruction{Op: vm.OpJmp, Ne: true, Addr: 0}),
		in(vm.Instruction{Op: vm.OpDraw, Symbol: 'A'}),
		in(vm.Instruction{Op: vm.OpDraw, Blank: true}),
		in(vm.Instruction{Op: vm.OpMove, Amount: -1}),
		in(vm.Instruction{Op: vm.OpMove, Amount: 1}),
		in(vm.Instruction{Op: vm.OpMove, Amount: -3}),
		in(vm.Instruction{Op: vm.OpMove, Amount: 16}),
		in(vm.Instruction{Op: vm.OpStop}),
		in(vm.Instruction{Op: vm.OpStop, Halt: true}),
		in(vm.Instruction{Op: vm.OpAlpha, Symbol: vm.Blank}),
		in(vm.Instruction{Op: vm.OpJmp, Eq: true, Ne: true}),
		0xffff,
	}, prog)
}

func TestAssemble_org(t *testing.T) {
	prog, err := asm.Assemble("org", strings.NewReader("halt .org 3 :here jmp here .org 1 fail"))
	require.NoError(t, err)
	require.Equal(t, vm.Program{
		in(vm.Instruction{Op: vm.OpStop, Halt: true}),
		in(vm.Instruction{Op: vm.OpStop}),
		0,
		in(vm.Instruction{Op: vm.OpJmp, Eq: true, Ne: true, Addr: 3}),
	}, prog)

	prog, err = asm.Assemble("empty", strings.NewReader("( nothing )"))
	require.NoError(t, err)
	require.Empty(t, prog)
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	bogus
	alpha 256
	cmp 'ab'
	move 200
	jmp 4000
	jeq -5
	.org -1
	.dat 70000
	.foo
:dup :dup
	jne nowhere
	`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	require.Error(t, err)
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)
	require.Len(t, errs, 10)
	for _, e := range errs {
		o := e.Pos.Offset
		end := o + 3
		if end > len(code) {
			end = len(code)
		}
		// error messages end with the offending token
		tok := strings.TrimPrefix(strings.TrimSpace(code[o:end]), ":")
		require.True(t, strings.Contains(e.Msg, tok), "error %q points to %q", e.Msg, code[o:end])
	}
	require.Contains(t, err.Error(), "test_errors:2:2: unknown mnemonic bogus")
}

func TestAssemble_undefinedLabel(t *testing.T) {
	_, err := asm.Assemble("undef", strings.NewReader("jmp nowhere\njeq nowhere"))
	require.EqualError(t, err, "undef:1:5: undefined label nowhere\nundef:2:5: undefined label nowhere")
}

func TestAssemble_missingArgument(t *testing.T) {
	_, err := asm.Assemble("missing", strings.NewReader("halt\ncmp ( comment )"))
	require.EqualError(t, err, "missing:2:1: missing argument for cmp")
}

func TestDisassemble_roundTrip(t *testing.T) {
	code := `alpha 'a' alpha blank cmp 'a' cmp blank cmpor 32 cmpor blank jmp 3 jeq 2047 jne 0
		draw 'z' draw blank draw 0 left right move -2 move 0 halt fail .dat 0x0003 .dat 0x0107`
	prog, err := asm.Assemble("rt", strings.NewReader(code))
	require.NoError(t, err)

	var b bytes.Buffer
	for pc := 0; pc < len(prog); {
		pc, err = asm.Disassemble(prog, pc, &b)
		require.NoError(t, err)
		b.WriteByte(' ')
	}
	dis := strings.TrimSpace(b.String())
	require.Equal(t, "alpha 'a' alpha blank cmp 'a' cmp blank cmpor 32 cmpor blank jmp 3 jeq 2047 jne 0 "+
		"draw 'z' draw blank draw 0 left right move -2 move 0 halt fail .dat 0x0003 .dat 0x0107", dis)

	again, err := asm.Assemble("rt2", strings.NewReader(dis))
	require.NoError(t, err)
	require.Equal(t, prog, again)
}

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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/turing/vm"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		w  vm.Word
		in vm.Instruction
	}{
		{0x6101, vm.Instruction{Op: vm.OpAlpha, Symbol: 'a'}},
		{0x0012, vm.Instruction{Op: vm.OpCmp, Blank: true}},
		{0x620a, vm.Instruction{Op: vm.OpCmp, Or: true, Symbol: 'b'}},
		{0x009b, vm.Instruction{Op: vm.OpJmp, Eq: true, Ne: true, Addr: 4}},
		{0xffeb, vm.Instruction{Op: vm.OpJmp, Eq: true, Addr: vm.MaxAddress}},
		{0x0033, vm.Instruction{Op: vm.OpJmp, Ne: true, Addr: 1}},
		{0x0014, vm.Instruction{Op: vm.OpDraw, Blank: true}},
		{0x7a04, vm.Instruction{Op: vm.OpDraw, Symbol: 'z'}},
		{0xff05, vm.Instruction{Op: vm.OpMove, Amount: -1}},
		{0x0105, vm.Instruction{Op: vm.OpMove, Amount: 1}},
		{0x000e, vm.Instruction{Op: vm.OpStop, Halt: true}},
		{0x0006, vm.Instruction{Op: vm.OpStop}},
	} {
		require.Equal(t, test.in, vm.Decode(test.w), "%#04x", uint16(test.w))
		require.Equal(t, test.w, test.in.Encode(), "%+v", test.in)
	}
}

func TestDecode_unknown(t *testing.T) {
	require.Equal(t, vm.Instruction{Op: 7}, vm.Decode(0xffff))
	require.Equal(t, vm.Instruction{}, vm.Decode(0x0100))
	// a jump with no condition decodes without error
	require.Equal(t, vm.Instruction{Op: vm.OpJmp, Addr: 2}, vm.Decode(0x0043))
}

func TestEncode_nonZero(t *testing.T) {
	for op := vm.OpAlpha; op <= vm.OpStop; op++ {
		require.NotZero(t, vm.Instruction{Op: op}.Encode(), op.String())
	}
	require.Equal(t, "alpha", vm.OpAlpha.String())
	require.Equal(t, "stop", vm.OpStop.String())
	require.Equal(t, "opcode(0)", vm.Opcode(0).String())
	require.Equal(t, "opcode(7)", vm.Opcode(7).String())
}

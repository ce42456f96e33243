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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		return 0, errors.New("short write")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteReport(t *testing.T) {
	for _, test := range []struct {
		name string
		code string
		tape string
		out  string
	}{
		{"accept", "alpha 'a' cmp 'a' jeq 4 fail draw blank halt", "a",
			"Halted after 0 moves and 5 instructions executed\n \n^\n\n"},
		{"reject", "cmp 'a'", "b",
			"Failed after 0 moves and 1 instructions executed\nb\n^\n\n"},
		{"grow right", "right right halt", "x",
			"Halted after 2 moves and 3 instructions executed\n  \n ^\n\n"},
		{"head on leading blank", "left left halt", "x",
			"Halted after 2 moves and 3 instructions executed\n  x\n^\n\n"},
		{"leading blanks trimmed", "left left right right halt", "ab",
			"Halted after 4 moves and 5 instructions executed\nab\n^\n\n"},
		{"head past leading blanks", "left left right right right halt", "ab",
			"Halted after 5 moves and 6 instructions executed\nab\n ^\n\n"},
		{"inner blank hides first cell", "right right halt", "a b",
			"Halted after 2 moves and 3 instructions executed\n b\n ^\n\n"},
		{"inner blanks counted", "right right right fail", "a b",
			"Failed after 3 moves and 4 instructions executed\n b \n  ^\n\n"},
		{"blank under head not counted", "right halt", "a b",
			"Halted after 1 moves and 2 instructions executed\na b\n ^\n\n"},
		{"end of program", "right", "ab",
			"Failed after 1 moves and 1 instructions executed\nab\n ^\n\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			i := runAsm(t, test.code, test.tape)
			var b bytes.Buffer
			require.NoError(t, i.WriteReport(&b))
			require.Equal(t, test.out, b.String())
		})
	}
}

func TestWriteReport_error(t *testing.T) {
	i := runAsm(t, "halt", "abc")
	err := i.WriteReport(&limitWriter{n: 10})
	require.Error(t, err)
	require.EqualError(t, errors.Cause(err), "short write")
}

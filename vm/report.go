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
	"io"
	"strconv"

	"github.com/db47h/turing/internal/tmi"
)

// WriteReport writes the outcome of the run to w: the final state with the
// run counters, the tape contents, and a caret under the head position,
// followed by an empty line.
//
// If n cells before the head are blank, the first n cells of the tape are not
// printed and the caret moves left by n. Blank cells at the start of the tape
// thus disappear, but a blank between two symbols left of the head also hides
// the first cell:
//
//	Halted after 2 moves and 3 instructions executed
//	 b
//	 ^
func (i *Instance) WriteReport(w io.Writer) error {
	ew := tmi.NewErrWriter(w)
	if i.state == Halted {
		ew.WriteString("Halted after ")
	} else {
		ew.WriteString("Failed after ")
	}
	ew.WriteString(strconv.FormatInt(i.stats.Moves, 10))
	ew.WriteString(" moves and ")
	ew.WriteString(strconv.FormatInt(i.stats.Instructions, 10))
	ew.WriteString(" instructions executed\n")

	cells := i.Tape.Bytes()
	skip := 0
	for _, c := range cells[:i.Head] {
		if c == Blank {
			skip++
		}
	}
	ew.Write(cells[skip:])
	ew.WriteByte('\n')
	ew.Pad(' ', i.Head-skip)
	ew.WriteString("^\n\n")
	return ew.Err
}

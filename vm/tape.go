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

// Blank is the empty tape symbol.
const Blank byte = ' '

// Tape is a double ended, growable sequence of symbols.
//
// Cells live in buf[off:]. Growing at the back is a plain append, growing at
// the front uses the free space before off and reallocates with a doubled
// margin when there is none left, so both ends grow in amortized O(1).
type Tape struct {
	buf []byte
	off int
}

// NewTape returns a new tape holding the symbols in s. An empty string yields
// a tape with a single blank cell.
func NewTape(s string) *Tape {
	if len(s) == 0 {
		return &Tape{buf: []byte{Blank}}
	}
	return &Tape{buf: []byte(s)}
}

// Len returns the number of cells on the tape.
func (t *Tape) Len() int {
	return len(t.buf) - t.off
}

// At returns the symbol in cell n.
func (t *Tape) At(n int) byte {
	return t.buf[t.off+n]
}

// Set writes c to cell n.
func (t *Tape) Set(n int, c byte) {
	t.buf[t.off+n] = c
}

// PushFront adds a cell holding c before the first cell. Cell indices of all
// existing cells are shifted by one.
func (t *Tape) PushFront(c byte) {
	if t.off == 0 {
		margin := len(t.buf)
		if margin < 8 {
			margin = 8
		}
		nb := make([]byte, margin+len(t.buf), margin+cap(t.buf))
		copy(nb[margin:], t.buf)
		t.buf, t.off = nb, margin
	}
	t.off--
	t.buf[t.off] = c
}

// PushBack adds a cell holding c after the last cell.
func (t *Tape) PushBack(c byte) {
	t.buf = append(t.buf, c)
}

// Bytes returns the tape contents. The returned slice aliases the tape and is
// only valid until the next Push.
func (t *Tape) Bytes() []byte {
	return t.buf[t.off:]
}

func (t *Tape) String() string {
	return string(t.Bytes())
}

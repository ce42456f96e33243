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
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultProgramWords is the program memory size of the reference machine.
const DefaultProgramWords = 1 << 11

// wordSize is the size in bytes of a Word in a program file.
const wordSize = 2

// Program is the instruction memory of the machine. It is loaded once and then
// shared read-only by all runs.
type Program []Word

// At returns the word at address ip, or 0 if ip is out of range.
func (p Program) At(ip int) Word {
	if ip < 0 || ip >= len(p) {
		return 0
	}
	return p[ip]
}

// Read reads a program from r. Program files are a flat array of little endian
// 16 bits words with no header. At most maxWords words are read; 0 means no
// limit. A trailing odd byte is ignored.
func Read(r io.Reader, maxWords int) (Program, error) {
	return read(bufio.NewReader(r), nil, maxWords)
}

func read(r io.Reader, p Program, maxWords int) (Program, error) {
	var b [wordSize]byte
	for maxWords <= 0 || len(p) < maxWords {
		_, err := io.ReadFull(r, b[:])
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, errors.Wrap(err, "word read failed")
		}
		p = append(p, Word(binary.LittleEndian.Uint16(b[:])))
	}
	return p, nil
}

// Load loads a program from file fileName. The program size is taken from the
// file size, capped to maxWords if maxWords > 0. Words beyond that limit are
// not read.
func Load(fileName string, maxWords int) (Program, error) {
	if maxWords < 0 {
		return nil, errors.Errorf("invalid program size %d", maxWords)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "fstat failed")
	}
	sz := st.Size()
	if sz > int64((^uint(0))>>1) { // MaxInt
		return nil, errors.Errorf("%v: file too large", fileName)
	}
	n := int(sz / wordSize)
	if maxWords > 0 && n > maxWords {
		n = maxWords
	}
	p, err := read(bufio.NewReader(f), make(Program, 0, n), maxWords)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return p, nil
}

// Save writes p to file fileName in the format expected by Load. The file is
// removed if an error occurs.
func Save(fileName string, p Program) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	var b [wordSize]byte
	for _, v := range p {
		binary.LittleEndian.PutUint16(b[:], uint16(v))
		if _, err = w.Write(b[:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

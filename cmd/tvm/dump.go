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

package main

import (
	"io"

	"github.com/k0kubun/pp/v3"

	"github.com/db47h/turing/vm"
)

// machineState is the part of a vm.Instance shown by -dump.
type machineState struct {
	Line     int
	State    string
	Fault    string
	IP       int
	Head     int
	Tape     string
	Alphabet string
	Flags    vm.Flags
	Stats    vm.Stats
}

func newMachineState(line int, i *vm.Instance) machineState {
	s := machineState{
		Line:     line,
		State:    i.State().String(),
		IP:       i.IP,
		Head:     i.Head,
		Tape:     i.Tape.String(),
		Alphabet: string(i.Alphabet()),
		Flags:    i.Flags(),
		Stats:    i.Stats(),
	}
	if err := i.Fault(); err != nil {
		s.Fault = err.Error()
	}
	return s
}

// dumpVM pretty prints the state of a finished machine to w.
func dumpVM(w io.Writer, line int, i *vm.Instance) error {
	p := pp.New()
	p.SetOutput(w)
	p.SetColoringEnabled(false)
	_, err := p.Println(newMachineState(line, i))
	return err
}

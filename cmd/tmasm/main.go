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

// The tmasm command assembles Turing machine programs into binary program files
// for the tvm command. See package github.com/db47h/turing/asm for the syntax.
//
// Usage:
//
//	tmasm [-o output] source
//
// The default output file name is the source file name with its extension
// replaced by ".bin".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/turing/asm"
	"github.com/db47h/turing/vm"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("tmasm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outFileName := fs.String("o", "", "write the program to `filename`")
	list := fs.Bool("l", false, "print a listing of the assembled program")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one source file")
	}
	src := fs.Arg(0)
	if *outFileName == "" {
		*outFileName = strings.TrimSuffix(src, filepath.Ext(src)) + ".bin"
	}

	f, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	prog, err := asm.Assemble(src, f)
	if err != nil {
		return err
	}
	if len(prog) > vm.DefaultProgramWords {
		fmt.Fprintf(stderr, "warning: program is %d words long, tvm loads %d by default\n", len(prog), vm.DefaultProgramWords)
	}
	if *list {
		if err = asm.DisassembleAll(prog, 0, stderr); err != nil {
			return err
		}
	}
	return vm.Save(*outFileName, prog)
}

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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/turing/asm"
	"github.com/db47h/turing/internal/config"
	"github.com/db47h/turing/internal/logs"
	"github.com/db47h/turing/session"
	"github.com/db47h/turing/vm"
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Cause() error  { return e.err }

var debug bool

func atExit(err error) {
	if err == nil {
		return
	}
	code := 1
	if e, ok := err.(*exitError); ok {
		code = e.code
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	os.Exit(code)
}

func main() {
	atExit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("tvm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tvm [options] program tapes\n\nOptions:\n")
		fs.PrintDefaults()
	}

	def := config.Default()
	cfgFile := fs.String("config", "", "load settings from HCL `file`")
	maxSteps := fs.Int64("max-steps", def.MaxSteps, "fail a tape after `n` instructions, 0 for no limit")
	compat := fs.Bool("compat", def.Compat, "loop forever on malformed jumps and unknown opcodes instead of failing")
	words := fs.Int("words", def.ProgramWords, "maximum program size in `words`, 0 for no limit")
	logLevel := fs.String("log-level", def.LogLevel, "log `level`: debug, info, warn or error")
	logFile := fs.String("log-file", def.LogFile, "also write JSON logs to `file`")
	disasm := fs.Bool("disasm", false, "print a program listing and exit")
	dump := fs.Bool("dump", false, "dump the machine state to stderr after each tape")
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	if err = fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &exitError{2, err}
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return &exitError{2, errors.Errorf("wrong number of arguments: expected program and tape files, got %d argument(s)", fs.NArg())}
	}

	settings := def
	if *cfgFile != "" {
		f, err := config.Load(*cfgFile)
		if err != nil {
			return err
		}
		f.Apply(&settings)
	}
	// flags given on the command line take precedence over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-steps":
			settings.MaxSteps = *maxSteps
		case "compat":
			settings.Compat = *compat
		case "words":
			settings.ProgramWords = *words
		case "log-level":
			settings.LogLevel = *logLevel
		case "log-file":
			settings.LogFile = *logFile
		}
	})
	if err = settings.Validate(); err != nil {
		return &exitError{2, err}
	}

	level, _ := logs.ParseLevel(settings.LogLevel)
	lo := logs.Options{Level: level, Stderr: stderr}
	if settings.LogFile != "" {
		lf, err := os.Create(settings.LogFile)
		if err != nil {
			return errors.Wrap(err, "log file")
		}
		defer lf.Close()
		lo.File = lf
	}
	logger := logs.New(lo)

	progName, tapesName := fs.Arg(0), fs.Arg(1)
	prog, err := vm.Load(progName, settings.ProgramWords)
	if err != nil {
		return errors.Wrapf(err, "program file %s", progName)
	}
	logger.Debug("program loaded", "file", progName, "words", len(prog))

	out := bufio.NewWriter(stdout)
	defer func() {
		if ferr := out.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
	}()

	if *disasm {
		return asm.DisassembleAll(prog, 0, out)
	}

	tapes, err := os.Open(tapesName)
	if err != nil {
		return errors.Wrapf(err, "tape file %s", tapesName)
	}
	defer tapes.Close()

	opts := []session.Option{
		session.VMOptions(
			vm.Logger(logger),
			vm.MaxSteps(settings.MaxSteps),
			vm.Compat(settings.Compat)),
		session.Logger(logger),
	}
	if *dump {
		opts = append(opts, session.OnTape(func(line int, i *vm.Instance) {
			if err := out.Flush(); err != nil {
				logger.Error("flush failed", "line", line, "err", err)
			}
			if err := dumpVM(stderr, line, i); err != nil {
				logger.Error("dump failed", "line", line, "err", err)
			}
		}))
	}

	t, err := session.Run(prog, tapes, out, opts...)
	logger.Info("done", "tapes", t.Tapes, "moves", t.Moves, "instructions", t.Instructions)
	return err
}

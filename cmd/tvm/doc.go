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

// The tvm command runs a Turing machine program against a file of tapes.
//
// Usage:
//
//	tvm [options] program tapes
//
// The program file is a binary file of little endian 16 bits instruction
// words, as produced by the tmasm command. The tapes file holds one tape per
// line; an empty line is a tape with a single blank cell.
//
// For each tape, tvm prints whether the machine halted or failed, the number
// of head moves and executed instructions, the final tape contents, and a
// caret under the final head position. Totals across all tapes are printed
// last:
//
//	Halted after 3 moves and 12 instructions executed
//	abc
//	   ^
//
//	Totals across all tapes...
//	       moves: 3
//	instructions: 12
//
// Options:
//
//	-compat
//		  loop forever on malformed jumps and unknown opcodes instead of failing
//	-config file
//		  load settings from HCL file
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a program listing and exit
//	-dump
//		  dump the machine state to stderr after each tape
//	-log-file file
//		  also write JSON logs to file
//	-log-level level
//		  log level: debug, info, warn or error (default "warn")
//	-max-steps n
//		  fail a tape after n instructions, 0 for no limit
//	-words words
//		  maximum program size in words, 0 for no limit (default 2048)
//
// -compat: the reference machine does not advance the instruction pointer on a
// jump instruction with no condition bits or on an unknown opcode, so such a
// program never terminates. By default, tvm fails the tape instead. Combine
// -compat with -max-steps to get the original behavior with a bounded run.
//
// -config: settings can be read from an HCL file with the attributes
// max_steps, compat, program_words, log_level and log_file. Options given on
// the command line override the file.
//
// -debug: prints errors with a full stack trace.
//
// Wrong usage exits with status 2, and I/O errors with status 1.
package main

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
	"fmt"

	"github.com/pkg/errors"
)

// Errors recorded as the fault of a failed run.
var (
	ErrMalformedJump = errors.New("jump with neither eq nor ne condition")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrStepLimit     = errors.New("step limit reached")
)

// OpcodeError reports an instruction that stopped a run. Err is one of
// ErrMalformedJump, ErrUnknownOpcode or ErrStepLimit.
type OpcodeError struct {
	IP   int
	Word Word
	Err  error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%v at address %d (word %#04x)", e.Err, e.IP, uint16(e.Word))
}

// Cause returns the underlying error.
func (e *OpcodeError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *OpcodeError) Unwrap() error { return e.Err }

// IllegalSymbolError reports a letter compare against a tape symbol that is
// not part of the alphabet.
type IllegalSymbolError struct {
	IP     int
	Symbol byte
}

func (e *IllegalSymbolError) Error() string {
	return fmt.Sprintf("symbol %q not in alphabet at address %d", e.Symbol, e.IP)
}

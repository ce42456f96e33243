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

package asm

import (
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/turing/vm"
)

type argKind int

const (
	argNone   argKind = iota
	argSymbol         // char, int or "blank"
	argAddr           // int, constant or label
	argAmount         // signed int
)

type mnemonic struct {
	in  vm.Instruction
	arg argKind
}

var mnemonics = map[string]mnemonic{
	"alpha": {vm.Instruction{Op: vm.OpAlpha}, argSymbol},
	"cmp":   {vm.Instruction{Op: vm.OpCmp}, argSymbol},
	"cmpor": {vm.Instruction{Op: vm.OpCmp, Or: true}, argSymbol},
	"jmp":   {vm.Instruction{Op: vm.OpJmp, Eq: true, Ne: true}, argAddr},
	"jeq":   {vm.Instruction{Op: vm.OpJmp, Eq: true}, argAddr},
	"jne":   {vm.Instruction{Op: vm.OpJmp, Ne: true}, argAddr},
	"draw":  {vm.Instruction{Op: vm.OpDraw}, argSymbol},
	"move":  {vm.Instruction{Op: vm.OpMove}, argAmount},
	"left":  {vm.Instruction{Op: vm.OpMove, Amount: -1}, argNone},
	"right": {vm.Instruction{Op: vm.OpMove, Amount: 1}, argNone},
	"halt":  {vm.Instruction{Op: vm.OpStop, Halt: true}, argNone},
	"fail":  {vm.Instruction{Op: vm.OpStop}, argNone},
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	prog   vm.Program
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(w vm.Word) {
	for p.pc >= len(p.prog) {
		p.prog = append(p.prog, make(vm.Program, 256)...)
	}
	p.prog[p.pc] = w
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

// next scans the next token, skipping comments.
func (p *parser) next() (tok rune, text string, pos scanner.Position) {
	for {
		tok = p.s.Scan()
		if tok != scanner.Ident || p.s.TokenText() != "(" {
			return tok, p.s.TokenText(), p.s.Position
		}
		for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
		}
		if tok == scanner.EOF {
			return tok, "", p.s.Pos()
		}
	}
}

// arg scans the argument of a mnemonic or directive.
func (p *parser) arg(what string, pos scanner.Position) (string, scanner.Position, bool) {
	tok, s, apos := p.next()
	if tok != scanner.Ident {
		p.error(pos, "missing argument for "+what)
		return "", apos, false
	}
	return s, apos, true
}

// value converts an int literal, char literal or constant name.
func (p *parser) value(s string) (int, bool) {
	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		return int(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			return 0, false
		}
		return int(r), true
	}
	if c, ok := p.consts[s]; ok {
		return c.address, true
	}
	return 0, false
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Program, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok, s, pos := p.next(); tok != scanner.EOF; tok, s, pos = p.next() {
		if tok != scanner.Ident {
			p.error(pos, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		switch s[0] {
		case ':':
			p.defineLabel(pos, s[1:])
		case '.':
			p.directive(pos, s)
		default:
			m, ok := mnemonics[s]
			if !ok {
				p.error(pos, "unknown mnemonic "+s)
				continue
			}
			p.instruction(pos, s, m)
		}
	}

	// resolve labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			for _, u := range l.uses {
				p.error(u.pos, "undefined label "+n)
			}
			continue
		}
		if l.address > vm.MaxAddress && len(l.uses) > 0 {
			p.error(l.pos, "label "+n+" out of jump range")
			continue
		}
		for _, u := range l.uses {
			in := vm.Decode(p.prog[u.address])
			in.Addr = l.address
			p.prog[u.address] = in.Encode()
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.prog[:p.size:p.size], nil
}

func (p *parser) defineLabel(pos scanner.Position, n string) {
	if len(n) == 0 {
		p.error(pos, "empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.error(pos, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error(pos, "label redefinition: "+n+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = pos
		return
	}
	p.labels[n] = &label{labelSite{pos, p.pc}, nil}
}

func (p *parser) useLabel(pos scanner.Position, n string) {
	l := p.labels[n]
	if l == nil {
		l = &label{labelSite{pos, -1}, nil}
		p.labels[n] = l
	}
	l.uses = append(l.uses, labelSite{pos, p.pc})
}

func (p *parser) directive(pos scanner.Position, s string) {
	switch s {
	case ".org":
		a, apos, ok := p.arg(s, pos)
		if !ok {
			return
		}
		v, ok := p.value(a)
		if !ok || v < 0 || v > vm.MaxAddress {
			p.error(apos, ".org: invalid address "+a)
			return
		}
		p.pc = v
	case ".dat":
		a, apos, ok := p.arg(s, pos)
		if !ok {
			return
		}
		v, ok := p.value(a)
		if !ok || v < 0 || v > 0xffff {
			p.error(apos, ".dat: invalid word "+a)
			return
		}
		p.write(vm.Word(v))
	case ".equ":
		n, npos, ok := p.arg(s, pos)
		if !ok {
			return
		}
		if l, ok := p.labels[n]; ok {
			p.error(npos, ".equ: redefinition of "+n+", previously defined/used as a label here: "+l.pos.String())
			return
		}
		a, apos, ok := p.arg(s, pos)
		if !ok {
			return
		}
		v, ok := p.value(a)
		if !ok {
			p.error(apos, ".equ: invalid value "+a)
			return
		}
		p.consts[n] = labelSite{npos, v}
	default:
		p.error(pos, "unknown directive "+s)
	}
}

func (p *parser) instruction(pos scanner.Position, s string, m mnemonic) {
	in := m.in
	if m.arg == argNone {
		p.write(in.Encode())
		return
	}
	a, apos, ok := p.arg(s, pos)
	if !ok {
		return
	}
	switch m.arg {
	case argSymbol:
		if a == "blank" {
			if in.Op == vm.OpAlpha {
				in.Symbol = vm.Blank
			} else {
				in.Blank = true
			}
			break
		}
		v, ok := p.value(a)
		if !ok || v < 0 || v > 0xff {
			p.error(apos, s+": invalid symbol "+a)
			return
		}
		in.Symbol = byte(v)
	case argAmount:
		v, ok := p.value(a)
		if !ok || v < -128 || v > 127 {
			p.error(apos, s+": invalid amount "+a)
			return
		}
		in.Amount = int8(v)
	case argAddr:
		v, ok := p.value(a)
		if !ok {
			if c := rune(a[0]); unicode.IsDigit(c) || c == '-' || c == '\'' || c == ':' || c == '.' {
				p.error(apos, s+": invalid address "+a)
				return
			}
			p.useLabel(apos, a)
			break
		}
		if v < 0 || v > vm.MaxAddress {
			p.error(apos, s+": address out of range "+a)
			return
		}
		in.Addr = v
	}
	p.write(in.Encode())
}

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

// Package config loads run settings from HCL files.
//
// A configuration file sets any of the following attributes:
//
//	max_steps     = 100000          # per tape instruction limit, 0 for none
//	compat        = false           # loop on malformed jumps and unknown opcodes
//	program_words = 2048            # maximum program size in words, 0 for none
//	log_level     = "warn"          # debug, info, warn or error
//	log_file      = "tvm.log"       # JSON log file
package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/db47h/turing/internal/logs"
	"github.com/db47h/turing/vm"
)

// Settings are the effective run settings.
type Settings struct {
	MaxSteps     int64
	Compat       bool
	ProgramWords int
	LogLevel     string
	LogFile      string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		ProgramWords: vm.DefaultProgramWords,
		LogLevel:     "warn",
	}
}

// Validate checks s for invalid values.
func (s *Settings) Validate() error {
	if s.MaxSteps < 0 {
		return errors.Errorf("invalid max_steps %d", s.MaxSteps)
	}
	if s.ProgramWords < 0 {
		return errors.Errorf("invalid program_words %d", s.ProgramWords)
	}
	_, err := logs.ParseLevel(s.LogLevel)
	return err
}

// File is the contents of a configuration file. Nil fields were not set.
type File struct {
	MaxSteps     *int64  `hcl:"max_steps,optional"`
	Compat       *bool   `hcl:"compat,optional"`
	ProgramWords *int    `hcl:"program_words,optional"`
	LogLevel     *string `hcl:"log_level,optional"`
	LogFile      *string `hcl:"log_file,optional"`
}

// Apply overrides the fields of s that are set in f.
func (f *File) Apply(s *Settings) {
	if f.MaxSteps != nil {
		s.MaxSteps = *f.MaxSteps
	}
	if f.Compat != nil {
		s.Compat = *f.Compat
	}
	if f.ProgramWords != nil {
		s.ProgramWords = *f.ProgramWords
	}
	if f.LogLevel != nil {
		s.LogLevel = *f.LogLevel
	}
	if f.LogFile != nil {
		s.LogFile = *f.LogFile
	}
}

// Load parses the configuration file fileName.
func Load(fileName string) (*File, error) {
	hf, diags := hclparse.NewParser().ParseHCLFile(fileName)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", fileName)
	}
	return decode(hf.Body, fileName)
}

// Parse parses configuration source. The fileName is only used in error
// messages.
func Parse(src []byte, fileName string) (*File, error) {
	hf, diags := hclparse.NewParser().ParseHCL(src, fileName)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", fileName)
	}
	return decode(hf.Body, fileName)
}

func decode(body hcl.Body, fileName string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode %s", fileName)
	}
	return &f, nil
}

// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// worddiff.Option.
package config

// DefaultWindow is the number of tokens the aligner looks ahead to resynchronize after a mismatch.
const DefaultWindow = 5

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Window limits how far the aligner looks ahead in either input to find a resynchronization
	// point. A window of 1 disables the lookahead.
	Window int

	// If set, consecutive matching tokens are reported as a single run instead of one run per
	// token.
	MergeUnchanged bool

	// If set, empty tokens produced by the tokenizer are dropped before aligning.
	SkipEmpty bool
}

// Default is the default configuration.
var Default = Config{
	Window:         DefaultWindow,
	MergeUnchanged: false,
	SkipEmpty:      false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Window Flag = 1 << iota
	MergeUnchanged
	SkipEmpty
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Window:
		return "worddiff.Window"
	case MergeUnchanged:
		return "worddiff.MergeUnchanged"
	case SkipEmpty:
		return "worddiff.SkipEmpty"
	default:
		panic("never reached")
	}
}

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

package worddiff

import "znkr.io/worddiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Window sets how many tokens the comparison functions look ahead in either input to find a
// matching token after a mismatch. The default is 5.
//
// Tokens skipped to reach the match are reported as deleted or added. If no match is found within
// the window, the mismatching tokens are reported as a substitution. A window of 1 disables the
// lookahead, smaller values are treated as 1.
func Window(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Window = max(1, n)
		return config.Window
	}
}

// MergeUnchanged combines consecutive matching tokens into a single Unchanged span. By default,
// every matching token is reported as its own span.
//
// With this option, no two adjacent spans in the output have the same kind.
func MergeUnchanged() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MergeUnchanged = true
		return config.MergeUnchanged
	}
}

// SkipEmpty drops empty words. Empty words are the result of leading or trailing whitespace or of
// an empty text.
func SkipEmpty() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SkipEmpty = true
		return config.SkipEmpty
	}
}

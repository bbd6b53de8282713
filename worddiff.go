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

import (
	"slices"
	"strings"

	"znkr.io/worddiff/internal/byteview"
	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/lookahead"
)

// Kind describes the kind of a span.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Unchanged Kind = iota // Tokens present in both inputs
	Deletion              // Tokens only present in the original input
	Addition              // Tokens only present in the updated input
)

// Span describes a run of consecutive tokens of the same kind.
//
// Text contains the tokens joined by a single space, followed by one trailing space. For example,
// the tokens "brown" and "fox" result in the text "brown fox ".
type Span struct {
	Kind Kind
	Text string
}

// Run describes the position of a span in both inputs.
//
//   - For Unchanged, x[PosX:EndX] and y[PosY:EndY] contain the same tokens.
//   - For Deletion, x[PosX:EndX] contains the deleted tokens and PosY == EndY.
//   - For Addition, y[PosY:EndY] contains the added tokens and PosX == EndX.
type Run struct {
	Kind       Kind
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Align compares the tokens in original and updated and returns the spans necessary to convert
// from one to the other.
//
// Every matching token is reported as its own Unchanged span, unless [MergeUnchanged] is used.
// Deletions and additions between two matches are combined into at most one Deletion span
// followed by at most one Addition span. If both inputs are empty, the output has length zero.
//
// The following options are supported: [worddiff.Window], [worddiff.MergeUnchanged]
func Align(original, updated []string, opts ...Option) []Span {
	cfg := config.FromOptions(opts, config.Window|config.MergeUnchanged)
	runs := lookahead.Align(original, updated, equal[string], cfg)
	return spans(original, updated, runs, byteview.From[string])
}

// Compare splits original and updated into words and returns the spans necessary to convert from
// one to the other. See [Words] for how text is split into words and [Align] for the output.
//
// The following options are supported: [worddiff.Window], [worddiff.MergeUnchanged],
// [worddiff.SkipEmpty]
func Compare[T string | []byte](original, updated T, opts ...Option) []Span {
	cfg := config.FromOptions(opts, config.Window|config.MergeUnchanged|config.SkipEmpty)
	x, y := words(byteview.From(original), cfg), words(byteview.From(updated), cfg)
	runs := lookahead.Align(x, y, equal[byteview.ByteView], cfg)
	return spans(x, y, runs, func(v byteview.ByteView) byteview.ByteView { return v })
}

// Runs compares the contents of x and y and returns the runs necessary to convert from one to the
// other. It's the positional form of [Align] for arbitrary comparable types.
//
// The following options are supported: [worddiff.Window], [worddiff.MergeUnchanged]
func Runs[T comparable](x, y []T, opts ...Option) []Run {
	cfg := config.FromOptions(opts, config.Window|config.MergeUnchanged)
	return runs(lookahead.Align(x, y, equal[T], cfg))
}

// RunsFunc compares the contents of x and y using the provided equality comparison and returns the
// runs necessary to convert from one to the other.
//
// The following options are supported: [worddiff.Window], [worddiff.MergeUnchanged]
func RunsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Run {
	cfg := config.FromOptions(opts, config.Window|config.MergeUnchanged)
	return runs(lookahead.Align(x, y, eq, cfg))
}

// Words splits text around each run of one or more whitespace characters.
//
// The text is not trimmed, leading or trailing whitespace results in a leading or trailing empty
// word, and an empty text results in a single empty word. Use [SkipEmpty] to drop empty words.
//
// Whitespace is every Unicode White_Space character except U+0085 (NEL), plus U+FEFF (BOM).
//
// The following option is supported: [worddiff.SkipEmpty]
func Words[T string | []byte](text T, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.SkipEmpty)
	views := words(byteview.From(text), cfg)
	_, isBytes := any(text).([]byte)
	out := make([]string, len(views))
	for i, v := range views {
		if isBytes {
			out[i] = strings.Clone(v.String())
		} else {
			out[i] = v.String()
		}
	}
	return out
}

func words(v byteview.ByteView, cfg config.Config) []byteview.ByteView {
	w := byteview.Words(v)
	if cfg.SkipEmpty {
		w = slices.DeleteFunc(w, func(v byteview.ByteView) bool { return v.Len() == 0 })
	}
	return w
}

func equal[T comparable](a, b T) bool { return a == b }

func spans[T any](x, y []T, runs []lookahead.Run, view func(T) byteview.ByteView) []Span {
	if len(runs) == 0 {
		return nil
	}
	out := make([]Span, len(runs))
	for i, r := range runs {
		switch r.Op {
		case lookahead.Match:
			out[i] = Span{Unchanged, join(x[r.S0:r.S1], view)}
		case lookahead.Delete:
			out[i] = Span{Deletion, join(x[r.S0:r.S1], view)}
		case lookahead.Insert:
			out[i] = Span{Addition, join(y[r.T0:r.T1], view)}
		default:
			panic("never reached")
		}
	}
	return out
}

// join concatenates tokens, each followed by a space. The result never shares memory with the
// input.
func join[T any](tokens []T, view func(T) byteview.ByteView) string {
	n := 0
	for _, tok := range tokens {
		n += view(tok).Len() + 1
	}
	var b byteview.Builder
	b.Grow(n)
	for _, tok := range tokens {
		b.WriteByteView(view(tok))
		b.WriteByte(' ')
	}
	return b.Build()
}

func runs(in []lookahead.Run) []Run {
	if len(in) == 0 {
		return nil
	}
	out := make([]Run, len(in))
	for i, r := range in {
		var kind Kind
		switch r.Op {
		case lookahead.Match:
			kind = Unchanged
		case lookahead.Delete:
			kind = Deletion
		case lookahead.Insert:
			kind = Addition
		default:
			panic("never reached")
		}
		out[i] = Run{
			Kind: kind,
			PosX: r.S0,
			EndX: r.S1,
			PosY: r.T0,
			EndY: r.T1,
		}
	}
	return out
}

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

// Package render presents the spans returned by [worddiff.Compare] and [worddiff.Align] as an
// inline diff.
//
// [ANSI] colors the spans using ANSI escape sequences for terminals and can wrap the output to a
// maximum width. [HTML] marks deletions and additions with <del> and <ins> elements.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents deletions in bold red:
//
//	Deletions(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
	"znkr.io/worddiff"
)

const reset = "\033[0m"

type config struct {
	unchanged, deletion, addition string // SGR sequences, empty for no color
	width                         int
	eastAsian                     bool
}

// Option configures [ANSI].
type Option func(*config)

// Unchanged colors unchanged spans. By default, unchanged spans are not colored.
func Unchanged(params ...int) Option {
	code := format(params)
	return func(cfg *config) {
		cfg.unchanged = code
	}
}

// Deletions colors deleted spans. The default is red and struck through (9;31).
func Deletions(params ...int) Option {
	code := format(params)
	return func(cfg *config) {
		cfg.deletion = code
	}
}

// Additions colors added spans. The default is green (32).
func Additions(params ...int) Option {
	code := format(params)
	return func(cfg *config) {
		cfg.addition = code
	}
}

// NoColor disables all colors.
func NoColor() Option {
	return func(cfg *config) {
		cfg.unchanged, cfg.deletion, cfg.addition = "", "", ""
	}
}

// Width wraps the output such that no line is wider than n terminal cells. Lines are broken
// between words; words that are wider than n are broken between grapheme clusters. Whitespace at
// line breaks and at the end of the output is dropped. A width of 0 or less disables wrapping.
func Width(n int) Option {
	return func(cfg *config) {
		cfg.width = max(0, n)
	}
}

// EastAsian treats ambiguous East Asian characters as two cells wide when wrapping. Use this if
// the terminal uses a CJK locale.
func EastAsian() Option {
	return func(cfg *config) {
		cfg.eastAsian = true
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

// ANSI renders spans for a terminal. Without [Width], the span texts are written unmodified,
// colored according to their kind. Colors are always reset before a line break and at the end of
// the output.
func ANSI(spans []worddiff.Span, opts ...Option) string {
	cfg := config{
		deletion: format([]int{9, 31}),
		addition: format([]int{32}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	cw := colorWriter{sb: &sb}
	if cfg.width == 0 {
		for _, span := range spans {
			cw.write(cfg.code(span.Kind), span.Text)
		}
		cw.close()
		return sb.String()
	}

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = cfg.eastAsian
	cond.StrictEmojiNeutral = !cfg.eastAsian
	w := wrapper{cw: &cw, cond: cond, width: cfg.width}
	for _, span := range spans {
		code := cfg.code(span.Kind)
		for _, word := range strings.Split(strings.TrimSuffix(span.Text, " "), " ") {
			w.word(code, word)
		}
	}
	cw.close()
	return sb.String()
}

func (cfg *config) code(kind worddiff.Kind) string {
	switch kind {
	case worddiff.Unchanged:
		return cfg.unchanged
	case worddiff.Deletion:
		return cfg.deletion
	case worddiff.Addition:
		return cfg.addition
	default:
		panic(fmt.Sprintf("unknown kind: %v", kind))
	}
}

// colorWriter writes text and only emits escape sequences when the color changes.
type colorWriter struct {
	sb   *strings.Builder
	open string // escape sequence of the active color, empty if none
}

func (cw *colorWriter) write(code, s string) {
	if s == "" {
		return
	}
	if code != cw.open {
		cw.close()
		cw.sb.WriteString(code)
		cw.open = code
	}
	cw.sb.WriteString(s)
}

func (cw *colorWriter) close() {
	if cw.open != "" {
		cw.sb.WriteString(reset)
		cw.open = ""
	}
}

// wrapper writes words, separated by spaces, and breaks lines when the next word doesn't fit.
type wrapper struct {
	cw    *colorWriter
	cond  *runewidth.Condition
	width int
	col   int // width of the current line

	// The space after the last word is only written if the next word is on the same line. It
	// belongs to the span of the last word and uses its color.
	pending     bool
	pendingCode string
}

func (w *wrapper) word(code, word string) {
	ww := w.cond.StringWidth(word)
	sep := 0
	if w.pending {
		sep = 1
	}
	if w.col > 0 && w.col+sep+ww > w.width {
		w.newline()
	} else if w.pending {
		w.cw.write(w.pendingCode, " ")
		w.col++
	}
	if w.col+ww > w.width {
		w.graphemes(code, word)
	} else {
		w.cw.write(code, word)
		w.col += ww
	}
	w.pending, w.pendingCode = true, code
}

// graphemes writes a word that is wider than the remaining line, breaking lines between grapheme
// clusters.
func (w *wrapper) graphemes(code, word string) {
	g := graphemes.FromString(word)
	start := 0
	for g.Next() {
		gw := w.cond.StringWidth(g.Value())
		if w.col > 0 && w.col+gw > w.width {
			w.cw.write(code, word[start:g.Start()])
			w.newline()
			start = g.Start()
		}
		w.col += gw
	}
	w.cw.write(code, word[start:])
}

func (w *wrapper) newline() {
	w.cw.close()
	w.cw.sb.WriteByte('\n')
	w.col = 0
	w.pending = false
}

// HTML renders spans as HTML. Deleted spans are wrapped in <del>, added spans in <ins>, and
// unchanged spans are written as is. All text is escaped.
func HTML(spans []worddiff.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		text := html.EscapeString(span.Text)
		switch span.Kind {
		case worddiff.Unchanged:
			sb.WriteString(text)
		case worddiff.Deletion:
			sb.WriteString("<del>")
			sb.WriteString(text)
			sb.WriteString("</del>")
		case worddiff.Addition:
			sb.WriteString("<ins>")
			sb.WriteString(text)
			sb.WriteString("</ins>")
		default:
			panic(fmt.Sprintf("unknown kind: %v", span.Kind))
		}
	}
	return sb.String()
}

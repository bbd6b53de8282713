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

package render

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"znkr.io/worddiff"
)

func TestANSI(t *testing.T) {
	spans := []worddiff.Span{
		{Kind: worddiff.Unchanged, Text: "the "},
		{Kind: worddiff.Deletion, Text: "cat "},
		{Kind: worddiff.Addition, Text: "dog "},
		{Kind: worddiff.Unchanged, Text: "sat "},
	}

	tests := []struct {
		name  string
		spans []worddiff.Span
		opts  []Option
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "default-colors",
			spans: spans,
			want:  "the \033[9;31mcat \033[0m\033[32mdog \033[0msat ",
		},
		{
			name:  "no-color",
			spans: spans,
			opts:  []Option{NoColor()},
			want:  "the cat dog sat ",
		},
		{
			name:  "custom-colors",
			spans: spans,
			opts:  []Option{Unchanged(2), Deletions(1, 31), Additions()},
			want:  "\033[2mthe \033[0m\033[1;31mcat \033[0mdog \033[2msat \033[0m",
		},
		{
			name:  "wrapped",
			spans: spans,
			opts:  []Option{Width(8)},
			want:  "the \033[9;31mcat\033[0m\n\033[32mdog \033[0msat",
		},
		{
			name:  "wrapped-no-color",
			spans: worddiff.Compare("aaa bbb ccc", "aaa bbb ccc"),
			opts:  []Option{NoColor(), Width(7)},
			want:  "aaa bbb\nccc",
		},
		{
			name:  "colors-are-reset-before-line-breaks",
			spans: []worddiff.Span{{Kind: worddiff.Deletion, Text: "aaa bbb "}},
			opts:  []Option{Width(3)},
			want:  "\033[9;31maaa\033[0m\n\033[9;31mbbb\033[0m",
		},
		{
			name:  "long-words-are-broken",
			spans: []worddiff.Span{{Kind: worddiff.Unchanged, Text: "abcdefghij "}},
			opts:  []Option{Width(4)},
			want:  "abcd\nefgh\nij",
		},
		{
			name:  "wide-characters",
			spans: worddiff.Compare("世界 你好", "世界 你好"),
			opts:  []Option{Width(4)},
			want:  "世界\n你好",
		},
		{
			name:  "ambiguous-width-is-narrow",
			spans: []worddiff.Span{{Kind: worddiff.Unchanged, Text: "\u00b1\u00b1 "}},
			opts:  []Option{Width(2)},
			want:  "\u00b1\u00b1",
		},
		{
			name:  "ambiguous-width-is-wide-in-east-asian-locales",
			spans: []worddiff.Span{{Kind: worddiff.Unchanged, Text: "\u00b1\u00b1 "}},
			opts:  []Option{Width(2), EastAsian()},
			want:  "\u00b1\n\u00b1",
		},
		{
			name:  "graphemes-are-not-broken",
			spans: []worddiff.Span{{Kind: worddiff.Unchanged, Text: "e\u0301e\u0301e\u0301 "}},
			opts:  []Option{Width(2)},
			want:  "e\u0301e\u0301\ne\u0301",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ANSI(tt.spans, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ANSI(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

var escapes = regexp.MustCompile("\033\\[[0-9;]*m")

func TestANSIWidth(t *testing.T) {
	vocabulary := strings.Fields("a tiny short medium-sized exceptionally-long-word 世界 caf\u00e9 e\u0301te")
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	for _, width := range []int{2, 5, 10, 40} {
		name := fmt.Sprintf("width=%d", width)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			for range 200 {
				x, y := randomText(rng, vocabulary), randomText(rng, vocabulary)
				spans := worddiff.Compare(x, y, worddiff.SkipEmpty())
				got := ANSI(spans, Width(width))
				for _, line := range strings.Split(got, "\n") {
					plain := escapes.ReplaceAllString(line, "")
					if w := cond.StringWidth(plain); w > width {
						t.Fatalf("ANSI(Compare(%q, %q), Width(%d)) has line %q of width %d", x, y, width, plain, w)
					}
					if strings.HasSuffix(plain, " ") {
						t.Fatalf("ANSI(Compare(%q, %q), Width(%d)) has trailing whitespace in line %q", x, y, width, plain)
					}
				}

				// Wrapping must not change the text, except for spaces.
				plain := escapes.ReplaceAllString(got, "")
				unwrapped := ANSI(spans, NoColor())
				if a, b := strings.Join(strings.Fields(plain), ""), strings.Join(strings.Fields(unwrapped), ""); a != b {
					t.Fatalf("ANSI(Compare(%q, %q), Width(%d)) changed the text:\ngot:  %q\nwant: %q", x, y, width, a, b)
				}
			}
		})
	}
}

func randomText(rng *rand.Rand, vocabulary []string) string {
	words := make([]string, rng.IntN(15))
	for i := range words {
		words[i] = vocabulary[rng.IntN(len(vocabulary))]
	}
	return strings.Join(words, " ")
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		original string
		updated  string
		want     string
	}{
		{
			name: "empty",
			want: " ",
		},
		{
			name:     "escaping",
			original: "if a <b> c",
			updated:  "if a &c c",
			want:     "if a <del>&lt;b&gt; </del><ins>&amp;c </ins>c ",
		},
		{
			name:     "quotes",
			original: `say "hello"`,
			updated:  `say 'hello'`,
			want:     "say <del>&#34;hello&#34; </del><ins>&#39;hello&#39; </ins>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTML(worddiff.Compare(tt.original, tt.updated))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("HTML(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

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

// Package benchmarks compares the word alignment against general purpose diff algorithms applied
// to words.
package benchmarks

import (
	"strings"

	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff"
	"znkr.io/worddiff"
)

// Edit describes a single word of a word-by-word diff.
type Edit struct {
	Op   diff.Op
	Word string
}

type Impl struct {
	Name string
	Diff func(x, y []string) []Edit
}

var Impls = []Impl{
	{
		Name: "worddiff",
		Diff: func(x, y []string) []Edit {
			return fromRuns(x, y, worddiff.Runs(x, y))
		},
	},
	{
		Name: "worddiff-window-1",
		Diff: func(x, y []string) []Edit {
			return fromRuns(x, y, worddiff.Runs(x, y, worddiff.Window(1)))
		},
	},
	{
		Name: "worddiff-window-10",
		Diff: func(x, y []string) []Edit {
			return fromRuns(x, y, worddiff.Runs(x, y, worddiff.Window(10)))
		},
	},
	{
		Name: "znkr",
		Diff: func(x, y []string) []Edit {
			var out []Edit
			for _, e := range diff.Edits(x, y) {
				switch e.Op {
				case diff.Match, diff.Delete:
					out = append(out, Edit{e.Op, e.X})
				case diff.Insert:
					out = append(out, Edit{e.Op, e.Y})
				}
			}
			return out
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []string) []Edit {
			// Within a chunk, changes always come before the equal words.
			var out []Edit
			for _, c := range godebug.DiffChunks(x, y) {
				for _, w := range c.Deleted {
					out = append(out, Edit{diff.Delete, w})
				}
				for _, w := range c.Added {
					out = append(out, Edit{diff.Insert, w})
				}
				for _, w := range c.Equal {
					out = append(out, Edit{diff.Match, w})
				}
			}
			return out
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []string) []Edit {
			d := mb0words{x, y}
			var out []Edit
			a := 0
			for _, ch := range mb0.Diff(len(x), len(y), d) {
				for ; a < ch.A; a++ {
					out = append(out, Edit{diff.Match, x[a]})
				}
				for _, w := range x[ch.A : ch.A+ch.Del] {
					out = append(out, Edit{diff.Delete, w})
				}
				for _, w := range y[ch.B : ch.B+ch.Ins] {
					out = append(out, Edit{diff.Insert, w})
				}
				a = ch.A + ch.Del
			}
			for ; a < len(x); a++ {
				out = append(out, Edit{diff.Match, x[a]})
			}
			return out
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []string) []Edit {
			// Words can't contain newlines, this allows us to use the line mode to diff words.
			dmp := diffmatchpatch.New()
			rx, ry, words := dmp.DiffLinesToRunes(lines(x), lines(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, words)

			var out []Edit
			for _, d := range diffs {
				var op diff.Op
				switch d.Type {
				case diffmatchpatch.DiffEqual:
					op = diff.Match
				case diffmatchpatch.DiffDelete:
					op = diff.Delete
				case diffmatchpatch.DiffInsert:
					op = diff.Insert
				}
				for _, word := range strings.SplitAfter(d.Text, "\n") {
					if word == "" {
						continue
					}
					out = append(out, Edit{op, strings.TrimSuffix(word, "\n")})
				}
			}
			return out
		},
	},
}

type mb0words struct {
	x, y []string
}

func (d mb0words) Equal(i, j int) bool { return d.x[i] == d.y[j] }

func fromRuns(x, y []string, runs []worddiff.Run) []Edit {
	var out []Edit
	for _, r := range runs {
		switch r.Kind {
		case worddiff.Unchanged:
			for _, w := range x[r.PosX:r.EndX] {
				out = append(out, Edit{diff.Match, w})
			}
		case worddiff.Deletion:
			for _, w := range x[r.PosX:r.EndX] {
				out = append(out, Edit{diff.Delete, w})
			}
		case worddiff.Addition:
			for _, w := range y[r.PosY:r.EndY] {
				out = append(out, Edit{diff.Insert, w})
			}
		}
	}
	return out
}

func lines(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, "\n") + "\n"
}

// Count returns the number of deleted and inserted words.
func Count(edits []Edit) int {
	n := 0
	for _, e := range edits {
		if e.Op != diff.Match {
			n++
		}
	}
	return n
}

// Format renders edits similar to wdiff, deletions in [-...-] and insertions in {+...+}.
func Format(edits []Edit) string {
	var sb strings.Builder
	for i := 0; i < len(edits); {
		op := edits[i].Op
		j := i
		for j < len(edits) && edits[j].Op == op {
			j++
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op {
		case diff.Delete:
			sb.WriteString("[-")
		case diff.Insert:
			sb.WriteString("{+")
		}
		for k, e := range edits[i:j] {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.Word)
		}
		switch op {
		case diff.Delete:
			sb.WriteString("-]")
		case diff.Insert:
			sb.WriteString("+}")
		}
		i = j
	}
	return sb.String()
}

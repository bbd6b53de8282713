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

// Package lookahead implements a greedy alignment of two sequences that resynchronizes after a
// mismatch by scanning a small window ahead in both inputs.
//
// The alignment is not minimal. It walks both inputs with one cursor each. Matching elements are
// reported immediately. On a mismatch, it looks for the current element of one input within the
// next few elements of the other input and, if found, treats the elements skipped over as deleted
// or inserted. If nothing is found within the window, the mismatch is treated as a substitution.
//
// Changes are collected until the next match (or the end of the inputs) and then reported as at
// most one deletion run followed by at most one insertion run.
package lookahead

import "znkr.io/worddiff/internal/config"

// Op describes the kind of a run.
type Op int

const (
	Match  Op = iota // Elements match in both inputs
	Delete           // Elements from x are removed
	Insert           // Elements from y are added
)

// Run describes a sequence of consecutive elements with the same Op.
//
// Delete runs cover x[S0:S1] and have S0 == S1 in y. Insert runs cover y[T0:T1] and have T0 == T1
// in x. Match runs cover the same number of elements in both inputs.
type Run struct {
	Op     Op
	S0, S1 int // Start and end in x.
	T0, T1 int // Start and end in y.
}

// Align compares x and y and returns the runs necessary to transform x into y.
//
// If both x and y are empty, the result is nil.
func Align[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) []Run {
	window := max(1, cfg.Window)
	a := aligner{merge: cfg.MergeUnchanged}
	n, m := len(x), len(y)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i >= n:
			j++
		case j >= m:
			i++
		case eq(x[i], y[j]):
			a.flush(i, j)
			a.emit(Run{Match, i, i + 1, j, j + 1})
			i++
			j++
			a.s0, a.t0 = i, j
		default:
			// Everything skipped here becomes part of the pending changes x[a.s0:i] and
			// y[a.t0:j]. Deletions are checked before insertions at the same distance.
			matched := false
			limit := min(window, max(n-i, m-j))
			for k := 1; k < limit; k++ {
				if i+k < n && eq(x[i+k], y[j]) {
					i += k
					matched = true
					break
				}
				if j+k < m && eq(x[i], y[j+k]) {
					j += k
					matched = true
					break
				}
			}
			if !matched {
				i++
				j++
			}
		}
	}
	a.flush(i, j)
	return a.runs
}

type aligner struct {
	runs   []Run
	s0, t0 int // start of pending deletions in x and pending insertions in y
	merge  bool
}

// flush emits the pending changes up to x[i] and y[j], deletions first.
func (a *aligner) flush(i, j int) {
	if a.s0 < i {
		a.emit(Run{Delete, a.s0, i, a.t0, a.t0})
	}
	if a.t0 < j {
		a.emit(Run{Insert, i, i, a.t0, j})
	}
	a.s0, a.t0 = i, j
}

func (a *aligner) emit(r Run) {
	if a.merge && r.Op == Match && len(a.runs) > 0 {
		if last := &a.runs[len(a.runs)-1]; last.Op == Match && last.S1 == r.S0 && last.T1 == r.T0 {
			last.S1, last.T1 = r.S1, r.T1
			return
		}
	}
	a.runs = append(a.runs, r)
}

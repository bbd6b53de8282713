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

package worddiff_test

import (
	"fmt"

	"znkr.io/worddiff"
)

// Compare two sentences word by word and print the result with deletions in [-...-] and additions
// in {+...+}, similar to what wdiff would produce.
func ExampleCompare() {
	x := "The quick brown fox jumps over the lazy dog"
	y := "The quick red fox jumped over the lazy dog"

	for _, span := range worddiff.Compare(x, y, worddiff.MergeUnchanged()) {
		switch span.Kind {
		case worddiff.Unchanged:
			fmt.Print(span.Text)
		case worddiff.Deletion:
			fmt.Printf("[-%s-]", span.Text)
		case worddiff.Addition:
			fmt.Printf("{+%s+}", span.Text)
		default:
			panic("never reached")
		}
	}
	fmt.Println()
	// Output:
	// The quick [-brown -]{+red +}fox [-jumps -]{+jumped +}over the lazy dog
}

// Align pre-split tokens. Every matching token is reported as a separate span.
func ExampleAlign() {
	x := []string{"the", "cat", "sat"}
	y := []string{"the", "sat"}
	for _, span := range worddiff.Align(x, y) {
		fmt.Printf("%-9v %q\n", span.Kind, span.Text)
	}
	// Output:
	// Unchanged "the "
	// Deletion  "cat "
	// Unchanged "sat "
}

// Use positions instead of text to find the changed tokens in both inputs.
func ExampleRuns() {
	x := []string{"the", "cat", "sat", "on", "the", "mat"}
	y := []string{"the", "cat", "sat", "on", "a", "mat"}
	for _, run := range worddiff.Runs(x, y, worddiff.MergeUnchanged()) {
		switch run.Kind {
		case worddiff.Deletion:
			fmt.Printf("deleted %q at %d\n", x[run.PosX:run.EndX], run.PosX)
		case worddiff.Addition:
			fmt.Printf("added %q at %d\n", y[run.PosY:run.EndY], run.PosY)
		}
	}
	// Output:
	// deleted ["the"] at 4
	// added ["a"] at 4
}

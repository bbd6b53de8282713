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

// Package worddiff compares two texts word by word and describes the changes as an inline diff.
//
// The main functions are [Compare], which splits two texts into words and aligns them, and
// [Align], which aligns two sequences of words. Both return a sequence of [Span] values, each
// labeled [Unchanged], [Deletion], or [Addition], in the order they should be presented. [Runs]
// returns the same alignment as positions in the inputs and works for any comparable type.
//
// The alignment is not a minimal diff. It walks both inputs in lockstep and, after a mismatch,
// looks a few words ahead in both inputs to find the next match. Small insertions and deletions
// are found this way, larger edits or moved text degrade to substitutions. The window can be
// configured using [Window].
//
// Performance: O(N*W) time where N = len(x) + len(y) and W is the window size, O(N) space.
//
// Note: To render the result, please see [znkr.io/worddiff/render].
//
// [znkr.io/worddiff/render]: https://pkg.go.dev/znkr.io/worddiff/render
package worddiff

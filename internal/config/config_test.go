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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "window",
			opts: []config.Option{
				worddiff.Window(8),
			},
			want: config.Config{
				Window:         8,
				MergeUnchanged: config.Default.MergeUnchanged,
				SkipEmpty:      config.Default.SkipEmpty,
			},
		},
		{
			name: "window-clamped",
			opts: []config.Option{
				worddiff.Window(-3),
			},
			want: config.Config{
				Window:         1,
				MergeUnchanged: config.Default.MergeUnchanged,
				SkipEmpty:      config.Default.SkipEmpty,
			},
		},
		{
			name: "merge-unchanged",
			opts: []config.Option{
				worddiff.MergeUnchanged(),
			},
			want: config.Config{
				Window:         config.Default.Window,
				MergeUnchanged: true,
				SkipEmpty:      config.Default.SkipEmpty,
			},
		},
		{
			name: "window-override",
			opts: []config.Option{
				worddiff.Window(2),
				worddiff.MergeUnchanged(),
				worddiff.Window(3),
			},
			want: config.Config{
				Window:         3,
				MergeUnchanged: true,
				SkipEmpty:      config.Default.SkipEmpty,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				worddiff.Window(7),
				worddiff.MergeUnchanged(),
				worddiff.SkipEmpty(),
			},
			want: config.Config{
				Window:         7,
				MergeUnchanged: true,
				SkipEmpty:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Window|config.MergeUnchanged|config.SkipEmpty)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) did not panic")
		}
		if got, want := r, "Option worddiff.SkipEmpty not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{worddiff.SkipEmpty()}, config.Window|config.MergeUnchanged)
}

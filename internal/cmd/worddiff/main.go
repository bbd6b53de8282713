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

// worddiff compares two files word by word and prints an inline diff.
//
//	worddiff [flags] old new
//
// It can also be used with git using GIT_EXTERNAL_DIFF, in which case git invokes it with seven
// arguments:
//
//	GIT_EXTERNAL_DIFF=worddiff git diff
//
// This is mostly useful to look at the output of the word alignment for real changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"znkr.io/worddiff"
	"znkr.io/worddiff/render"
)

type config struct {
	window    int
	merge     bool
	skipEmpty bool
	width     int
	eastAsian bool
	html      bool
	color     bool
}

func main() {
	var cfg config
	fs := flag.NewFlagSet("worddiff", flag.ExitOnError)
	registerFlags(fs, &cfg)
	fs.Parse(os.Args[1:])

	if err := run(os.Stdout, &cfg, fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func registerFlags(fs *flag.FlagSet, cfg *config) {
	fs.IntVar(&cfg.window, "window", 5, "number of words to look ahead after a mismatch")
	fs.BoolVar(&cfg.merge, "merge", true, "merge consecutive unchanged words into one span")
	fs.BoolVar(&cfg.skipEmpty, "skip-empty", true, "ignore leading and trailing whitespace")
	fs.IntVar(&cfg.width, "width", 0, "if >0, wrap output at this many terminal cells")
	fs.BoolVar(&cfg.eastAsian, "east-asian", false, "treat ambiguous characters as wide when wrapping")
	fs.BoolVar(&cfg.html, "html", false, "print HTML instead of terminal output")
	fs.BoolVar(&cfg.color, "color", true, "color terminal output")
}

func run(w io.Writer, cfg *config, args []string) error {
	var path, oldFile, newFile string
	switch len(args) {
	case 2:
		oldFile, newFile = args[0], args[1]
	case 7:
		// path old-file old-hex old-mode new-file new-hex new-mode
		path, oldFile, newFile = args[0], args[1], args[4]
	default:
		return fmt.Errorf("expected 2 or 7 args, got %v: %v", len(args), args)
	}

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	opts := []worddiff.Option{worddiff.Window(cfg.window)}
	if cfg.merge {
		opts = append(opts, worddiff.MergeUnchanged())
	}
	if cfg.skipEmpty {
		opts = append(opts, worddiff.SkipEmpty())
	}
	spans := worddiff.Compare(old, new, opts...)

	var out string
	if cfg.html {
		out = render.HTML(spans)
	} else {
		var ropts []render.Option
		if !cfg.color {
			ropts = append(ropts, render.NoColor())
		}
		if cfg.width > 0 {
			ropts = append(ropts, render.Width(cfg.width))
		}
		if cfg.eastAsian {
			ropts = append(ropts, render.EastAsian())
		}
		out = render.ANSI(spans, ropts...)
	}

	if path != "" {
		if _, err := fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}

func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

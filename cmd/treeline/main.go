// Command treeline answers the tree-survey puzzle for a grid of digit heights.
//
//	treeline [input] [--part 1|2] [--workers N] [--config file.toml]
//	treeline render [input] --layer scenic --out scores.png
//
// The input is read from the named file, or from standard input when no
// file (or "-") is given. The answer is printed to standard output as a
// single decimal integer; diagnostics go to standard error.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

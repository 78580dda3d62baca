// Command nfaregex compiles a regular expression, prints its expression
// tree and the generated NFA, and optionally tests a word against it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dlclark/nfaregex"
	"github.com/dlclark/nfaregex/syntax"
)

func main() {
	word := flag.String("word", "", "word to test against the pattern")
	verbose := flag.Bool("v", false, "verbose output with compile traces")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nfaregex [-word w] [-v] <pattern>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	pattern := flag.Arg(0)

	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}

	re, err := nfaregex.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("Pattern: %s\n", pattern)
	if *verbose {
		// Compile already tokenized this pattern, so Normalize cannot fail here
		if normalized, nerr := syntax.Normalize(pattern); nerr == nil {
			fmt.Printf("Normalized: %s\n", normalized)
		}
	}
	fmt.Println()
	fmt.Print(re.Tree().Dump())
	fmt.Println()
	fmt.Print(re.NFA().Dump())

	if *word != "" {
		fmt.Println()
		if re.MatchString(*word) {
			fmt.Printf("The word %q matches the regular expression %q.\n", *word, pattern)
		} else {
			fmt.Printf("The word %q doesn't match the regular expression %q.\n", *word, pattern)
		}
	}
}

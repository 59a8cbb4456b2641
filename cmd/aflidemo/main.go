// Package main provides aflidemo, a minimal demonstration binary that
// wires a config file into AFLI or NFL and runs a handful of operations
// end to end. It is not a benchmark harness: no timing, no trace file
// replay.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("aflidemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	mode := fs.String("mode", "afli", `index mode: "afli" or "nfl"`)
	configPath := fs.String("config", "", "path to a key=value config file (optional)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var err error

	switch *mode {
	case "afli":
		err = runAFLIDemo(*configPath, stdout)
	case "nfl":
		err = runNFLDemo(*configPath, stdout)
	default:
		err = fmt.Errorf("aflidemo: unknown mode %q", *mode)
	}

	if err != nil {
		fmt.Fprintln(stderr, "aflidemo:", err)
		return 1
	}

	return 0
}

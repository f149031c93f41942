// Copyright (C) 2025 Wali Morris. All Rights Reserved.

// Command yapb4json tokenizes flat JSON objects and prints one token
// per line. With a file argument it scans the whole file; with no
// arguments it reads and scans one line at a time from standard input.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/walimorris/YapB4Json"
)

func main() {
	switch {
	case len(os.Args) > 2:
		fmt.Fprintln(os.Stderr, "Usage: yapb4json [script]")
		os.Exit(64)
	case len(os.Args) == 2:
		runFile(os.Args[1])
	default:
		runPrompt()
	}
}

func runFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(string(data)); err != nil {
		exitCode(err)
	}
}

func runPrompt() {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		// An unterminated string only poisons the current line; any
		// other lexical error ends the session.
		if err := run(in.Text()); err != nil && !errors.Is(err, yapb4json.ErrUnterminatedString) {
			os.Exit(1)
		}
	}
	if err := in.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run scans a single source string, printing every token gathered to
// stdout and any error report to stderr.
func run(source string) error {
	s := yapb4json.New(source)
	s.SetErrorSink(func(line int, msg string) {
		fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, msg)
	})
	tokens, err := s.Scan()
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return err
}

// exitCode maps a scan error to the process exit status: 65 when the
// run completed with a recorded error, 1 when scanning was aborted.
func exitCode(err error) {
	if errors.Is(err, yapb4json.ErrUnterminatedString) {
		os.Exit(65)
	}
	os.Exit(1)
}

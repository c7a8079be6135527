package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		code := exitCode(err)
		if !errors.Is(err, errChangesDetected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
}

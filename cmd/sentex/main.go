// Package main is the entry point for the sentex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/voxtools/sentex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

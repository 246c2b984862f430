// Package main is the entry point for the labctl CLI.
//
// labctl is a client for a running patternlab server; all command logic
// lives in the internal/cli package.
package main

import (
	"patternlab/internal/cli"
)

// Set by ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}

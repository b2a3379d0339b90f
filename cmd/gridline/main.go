// Package main provides the entry point for the gridline CLI tool.
package main

import "github.com/gridlinehq/gridline/cmd/gridline/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

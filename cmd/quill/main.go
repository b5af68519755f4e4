// Package main provides the entry point for the quill CLI tool.
package main

import (
	"github.com/quillmark/quill/cmd/quill/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

// Package main provides the entry point for the confdocs CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zipo2008/confdocs/cmd/confdocs/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, version, commit, date); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the agentsgen CLI.
//
// agentsgen builds AGENTS.md files (and optional sub-agent documents) for AI
// coding assistants from an answers file, an interactive form or a guided
// wizard.
//
// Commands: generate, form, wizard, watch, catalog, config, version.
//
// For detailed usage information, run:
//
//	agentsgen --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Package main is the entry point for the create-bluewaves-app CLI.
//
// create-bluewaves-app scaffolds a Next.js application wired to the Surfer
// design system and shadcn/ui. It validates every input first, then runs
// create-next-app, shadcn, the package manager and git in a fixed order.
//
// Commands: the root command creates a project; doctor, defaults, version
// and completion are utilities.
//
// For detailed usage information, run:
//
//	create-bluewaves-app --help
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/create-bluewaves-app/cmd/create-bluewaves-app/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}

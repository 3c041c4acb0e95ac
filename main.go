package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mrlokans/quoteserver/internal/cli"
	"github.com/mrlokans/quoteserver/internal/config"
	"github.com/mrlokans/quoteserver/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// No command, a flag, or "serve" runs the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" || (strings.HasPrefix(os.Args[1], "-") && !isHelp(os.Args[1])) {
		args := os.Args[1:]
		if len(args) > 0 && args[0] == "serve" {
			args = args[1:]
		}
		flags, err := cli.ParseServeFlags(args)
		if err != nil {
			fail(err)
		}
		cfg := config.NewConfig()
		flags.Apply(cfg)
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "import":
		cmd := cli.NewImportCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fail(err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		err := cmd.Run(ctx)
		stop()
		if err != nil {
			fail(err)
		}

	case "version":
		fmt.Printf("quote_server %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "quote_server: error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import    Import quotes from a JSON file and exit\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

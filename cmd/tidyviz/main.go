package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)

	// The log level depends on --verbose, which is only known after flag
	// parsing, so it moves into the pre-run hook.
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	chainPreRun(root, func() {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130 // 128 + SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// chainPreRun runs fn before the command's existing PersistentPreRunE.
func chainPreRun(cmd *cobra.Command, fn func()) {
	prev := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		fn()
		if prev != nil {
			return prev(cmd, args)
		}
		return nil
	}
}

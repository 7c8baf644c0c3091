// Command roguemap generates, edits, exports and serves roguelike run maps.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/internal/cli"
	rmerrors "github.com/avulnerador/RogueMap-Gen/pkg/errors"
)

// Exit codes.
const (
	exitError    = 1
	exitInvalid  = 2   // rejected config, document or map
	exitCanceled = 130 // Standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != exitCanceled {
			fmt.Fprintln(os.Stderr, "Error:", rmerrors.UserMessage(err))
		}
		os.Exit(code)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known once flags are parsed.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitCanceled
	}
	if code := rmerrors.GetCode(err); strings.HasPrefix(string(code), "INVALID_") {
		return exitInvalid
	}
	return exitError
}

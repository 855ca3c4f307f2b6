package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rshade/vlist/internal/cli"
	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/virtuallist"
	"github.com/rshade/vlist/pkg/version"
)

// Exit codes.
const (
	exitOK            = 0
	exitError         = 1
	exitInvalidConfig = 2
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	// Cobra prints the error.
	return root.ExecuteContext(ctx)
}

// exitCode maps configuration errors to a distinct exit status so scripts
// can tell a bad config.yaml from a failed command.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, virtuallist.ErrInvalidConfig):
		return exitInvalidConfig
	default:
		return exitError
	}
}

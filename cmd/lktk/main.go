package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/walteh/lktk/cmd/lktk/commands"
	"github.com/walteh/lktk/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrCheckFailed) {
			log.Fatal(stderr, err)
		}
		return 1
	}
	return 0
}

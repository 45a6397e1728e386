package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"

	cheqprint "github.com/voxtmault/cheqprint-smoke"
)

var envPath = ".env"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, envPath, os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// run performs one smoke run and returns the process exit code.
func run(ctx context.Context, envPath string, in io.Reader, out io.Writer) int {
	cfg, err := cheqprint.Setup(ctx, envPath)
	if err != nil {
		slog.Error("failed to load configuration", "reason", err)
		return 1
	}

	if err := cheqprint.NewRunner(cfg, in, out).Run(ctx); err != nil {
		if !eris.Is(err, cheqprint.ErrMissingAPIKey) {
			slog.Error("smoke run aborted", "reason", err)
		}
		return 1
	}

	return 0
}

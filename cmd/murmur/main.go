package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"murmur/internal/services"
)

func main() {
	// Interrupts cancel the run's context so in-flight ffmpeg and whisper
	// invocations are killed rather than orphaned.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates fatal run failures (missing input, media-tool
// failure) from usage and wiring errors so scripts can tell a bad input
// apart from a bad invocation.
func exitCode(err error) int {
	if services.IsFatal(err) {
		return 2
	}
	return 1
}

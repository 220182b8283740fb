package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalidTransition) && !errors.Is(err, errInvalidInput) {
			fmt.Fprintf(os.Stderr, "statusguard: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

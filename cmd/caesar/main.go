package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			// Interrupted at a prompt: finish the prompt line and leave like SIGINT would.
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "caesar: %s\n", err)
		os.Exit(1)
	}
}

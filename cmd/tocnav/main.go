package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// Command vibematch matches free-text vibes against a product catalog.
//
// Running it without a subcommand plays the demonstration: the catalog
// table, three sample queries with their top matches, and a reflection.
//
//	vibematch                      # same as: vibematch demo
//	vibematch match soft cozy aesthetic --top-k 5
//	vibematch catalog --catalog items.yaml
//	vibematch serve --transport http --addr :8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

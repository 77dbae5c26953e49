// Command ls-almanac computes astronomical event times: seasons, moon
// phases, planet rise and set, elongations and lunar apsides.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/litescript/ls-almanac/cmd/ls-almanac/commands"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := commands.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

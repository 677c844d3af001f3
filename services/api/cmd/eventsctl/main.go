// Command eventsctl lists, creates, edits and retires sports events from a
// terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/cli"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/config"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/gateway"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/logging"
)

func main() {
	logger := logging.New(os.Getenv("LOG_LEVEL"), "text")
	config.LoadDotEnv(logger)

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := gateway.New(cfg.APIURL, cfg.Token, cfg.Timeout)
	err = cli.Run(ctx, os.Args[1:], cfg, client, os.Stdout, logger)
	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

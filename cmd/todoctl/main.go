// Package main is the entry point for the todoctl CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoctl/internal/backend/todoapi"
	"todoctl/internal/cli"
	"todoctl/internal/commands"
	"todoctl/internal/config"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return todoapi.New(cfg, sess), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

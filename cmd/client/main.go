package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/dropshare/internal/client/cli"
	"github.com/dmitrijs2005/dropshare/internal/client/config"
	"github.com/dmitrijs2005/dropshare/internal/flagx"
	"github.com/dmitrijs2005/dropshare/internal/logging"
)

func main() {
	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	paths := flagx.Positional(args, config.Flags)
	if len(paths) == 0 {
		app.Run(ctx)
		return
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	err = app.RunOnce(ctx, paths)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

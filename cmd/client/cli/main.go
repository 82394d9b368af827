package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/guestkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/guestkeeper/internal/client/cli"
	"github.com/dmitrijs2005/guestkeeper/internal/client/config"
	"github.com/dmitrijs2005/guestkeeper/internal/logging"
	"github.com/rs/zerolog"
)

func main() {

	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := logging.NewConsoleLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "starting guestkeeper console", "build", buildinfo.String())

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app.Run(ctx)

}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/signup/config"
	"github.com/haguru/signup/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// create and initialize the app
	app, err := app.NewApp(ctx, config.ConfigPath())
	if err != nil {
		panic(err)
	}

	// serve until interrupted
	if err := app.Run(ctx); err != nil {
		app.Logger.Error("Server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}

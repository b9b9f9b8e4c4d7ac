package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/dispatcher/config"
	"github.com/haguru/dispatcher/internal/app"
)

func main() {
	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err) // handle error appropriately in production code
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// serve until SIGINT/SIGTERM, then shut down gracefully
	if err := app.Run(ctx); err != nil {
		app.Logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

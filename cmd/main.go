package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/AndreaVaz0608/skyai/internal/app"
)

const appName = "skyai"

func main() {
	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New(appName, cfg)

	if err := application.Run(ctx); err != nil {
		panic(err)
	}
}

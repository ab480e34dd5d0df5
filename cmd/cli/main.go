package main

import (
	"context"
	"os"

	"github.com/invotrack/invocli/internal/buildinfo"
	"github.com/invotrack/invocli/internal/client/cli"
	"github.com/invotrack/invocli/internal/client/config"
	"github.com/invotrack/invocli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTerminalLogger()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}

package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gymkeeper/internal/cli"
	"github.com/dmitrijs2005/gymkeeper/internal/config"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/google/uuid"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(logging.Setup(cfg.LogLevel, os.Stderr)).
		With("session", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

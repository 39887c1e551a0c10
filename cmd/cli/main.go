package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/marketcart/internal/client/cli"
	"github.com/dmitrijs2005/marketcart/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	app.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"portfolio-assistant/internal/app"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/logging"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := app.NewHandler(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create handler")
	}

	lambda.Start(h.Handle)
}

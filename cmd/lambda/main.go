package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tbeaudouin05/startupstack-checkout/api/bootstrap"
	"github.com/tbeaudouin05/startupstack-checkout/api/config"
	"github.com/tbeaudouin05/startupstack-checkout/api/lambdaproxy"
	"github.com/tbeaudouin05/startupstack-checkout/api/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	// Services are built once per cold start and reused across invocations.
	svc, err := bootstrap.Init(context.Background(), cfg)
	if err != nil {
		log.Error("bootstrap failed", "err", err)
		os.Exit(1)
	}

	lambda.Start(lambdaproxy.NewHandler(svc.Router()))
}

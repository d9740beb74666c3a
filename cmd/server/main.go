package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"

	"github.com/tbeaudouin05/startupstack-checkout/api/bootstrap"
	"github.com/tbeaudouin05/startupstack-checkout/api/config"
	"github.com/tbeaudouin05/startupstack-checkout/api/logger"
	grpcserver "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	httpPort := pflag.String("http-port", cfg.HTTPPort, "HTTP listen port")
	grpcPort := pflag.String("grpc-port", cfg.GRPCPort, "gRPC listen port (empty disables gRPC)")
	pflag.Parse()

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Init(ctx, cfg)
	if err != nil {
		log.Error("bootstrap failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.Error("failed to close services", "err", err)
		}
	}()

	httpSrv := &http.Server{
		Addr:              ":" + *httpPort,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 2)
	go func() {
		log.Info("http server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var grpcSrv *grpc.Server
	if *grpcPort != "" {
		lis, err := net.Listen("tcp", ":"+*grpcPort)
		if err != nil {
			log.Error("failed to listen for grpc", "port", *grpcPort, "err", err)
			os.Exit(1)
		}
		grpcSrv = grpc.NewServer(grpcserver.UnaryInterceptors())
		grpcserver.Register(grpcSrv, grpcserver.New(svc.Checkout, svc.Welcome, cfg.IsDevelopment()))
		go func() {
			log.Info("grpc server listening", "addr", lis.Addr().String())
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
}

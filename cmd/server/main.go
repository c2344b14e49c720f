package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/source-service/internal/config"
	"github.com/light-bringer/source-service/internal/services"
	"github.com/light-bringer/source-service/internal/transport/grpc/interceptors"
	httphandler "github.com/light-bringer/source-service/internal/transport/http"
	pb "github.com/light-bringer/source-service/proto/source/v1"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration from environment variables
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	logger.Info("starting source service",
		"listen_addr", cfg.ListenAddr,
		"data_dir", cfg.DataDir,
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}

	// 3. Create gRPC server
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors.UnaryLogging(logger)),
		grpc.ChainStreamInterceptor(interceptors.StreamLogging(logger)),
	)

	// 4. Register services
	pb.RegisterSourceServiceServer(grpcServer, serviceOpts.SourceHandler)

	// 5. Start listening
	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr, err)
	}

	// 6. HTTP read bridge: GET /api/v1/sources proxied over a loopback
	// gRPC client so the JSON view always matches the gRPC surface.
	grpcConn, err := grpc.NewClient(loopbackTarget(cfg.ListenAddr), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to create loopback grpc client: %w", err)
	}
	defer grpcConn.Close()

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/v1/sources", httphandler.NewSourcesHandler(pb.NewSourceServiceClient(grpcConn)))
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpMux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("grpc server listening", "addr", lis.Addr().String())
		return grpcServer.Serve(lis)
	})

	group.Go(func() error {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down gracefully", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http server shutdown", "error", err)
		}

		// GracefulStop waits for in-flight streams; force-stop if a
		// consumer keeps a stream open past the deadline.
		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.ShutdownTimeout):
			logger.Warn("graceful stop timed out, forcing shutdown")
			grpcServer.Stop()
		}
		return nil
	})

	if err := group.Wait(); err != nil && err != grpc.ErrServerStopped {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// loopbackTarget turns a listen address like ":50062" into a dialable
// client target on the local host.
func loopbackTarget(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

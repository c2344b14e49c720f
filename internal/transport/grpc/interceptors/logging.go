// Package interceptors provides server-side gRPC middleware.
package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/source-service/internal/pkg/logging"
)

// UnaryLogging returns an interceptor that logs every unary call with a
// per-request id, its duration and its status code.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	logger = logging.Default(logger)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := uuid.NewString()

		resp, err := handler(ctx, req)

		logger.LogAttrs(ctx, levelFor(err), "unary call",
			slog.String("request_id", requestID),
			slog.String("method", info.FullMethod),
			slog.Duration("duration", time.Since(start)),
			slog.String("code", status.Code(err).String()),
		)
		return resp, err
	}
}

// StreamLogging returns an interceptor that logs every server stream once
// it finishes, whether it drained fully or the consumer went away.
func StreamLogging(logger *slog.Logger) grpc.StreamServerInterceptor {
	logger = logging.Default(logger)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		requestID := uuid.NewString()

		err := handler(srv, ss)

		logger.LogAttrs(ss.Context(), levelFor(err), "stream finished",
			slog.String("request_id", requestID),
			slog.String("method", info.FullMethod),
			slog.Duration("duration", time.Since(start)),
			slog.String("code", status.Code(err).String()),
		)
		return err
	}
}

func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

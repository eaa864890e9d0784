package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// UnaryLogging tags the call context with a trace id from the x-trace-id
// metadata (or a fresh one) and writes one access line per call.
func (h *Handler) UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		traceID := uuid.NewString()
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
				traceID = values[0]
			}
		}

		l := h.logger.WithTraceID(traceID)
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := next(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("call handled")

		return resp, err
	}
}

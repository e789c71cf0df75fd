package service

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext возвращает ID запроса, проставленный перехватчиком.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}

// UnaryServerInterceptor проставляет x-request-id, пишет access-лог
// и превращает панику обработчика в codes.Internal.
func UnaryServerInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		reqID := incomingRequestID(ctx)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, requestIDKey{}, reqID)
		// вне настоящего транспорта (юнит-тесты) заголовок не ставится
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, reqID))

		started := time.Now()
		defer func() {
			if p := recover(); p != nil {
				log.Error("panic recovered",
					zap.String("request_id", reqID),
					zap.String("method", info.FullMethod),
					zap.Any("panic", p),
					zap.String("stack", string(debug.Stack())),
				)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}

			code := status.Code(err)
			fields := []zap.Field{
				zap.String("request_id", reqID),
				zap.String("method", info.FullMethod),
				zap.String("code", code.String()),
				zap.Duration("took", time.Since(started)),
			}
			switch code {
			case codes.OK:
				log.Info("grpc request", fields...)
			case codes.Internal, codes.Unavailable, codes.Unknown:
				log.Error("grpc request", append(fields, zap.Error(err))...)
			default:
				log.Warn("grpc request", append(fields, zap.Error(err))...)
			}
		}()

		return handler(ctx, req)
	}
}

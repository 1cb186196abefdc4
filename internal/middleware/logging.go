package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// caller is filled in by WithUser so that the logging interceptor, which
// runs before RequireAuth, still sees who made the call.
type caller struct {
	userID string
}

const callerKey contextKey = "caller"

// LoggingInterceptor logs every RPC call with its procedure, user ID,
// duration and error code. Client errors log at WARN, internal ones at ERROR.
// It runs ahead of RequireAuth so rejected calls are logged too.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			c := &caller{userID: GetUserID(ctx)}

			resp, err := next(context.WithValue(ctx, callerKey, c), req)
			userID := c.userID // empty on public procedures and rejected calls

			duration := time.Since(start).Milliseconds()
			if err == nil {
				logger.Info("RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"duration_ms", duration,
				)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
				logger.Warn("RPC error",
					"procedure", procedure,
					"code", connectErr.Code(),
					"error", connectErr.Message(),
					"user_id", userID,
					"duration_ms", duration,
				)
			} else {
				logger.Error("RPC error",
					"procedure", procedure,
					"error", err,
					"user_id", userID,
					"duration_ms", duration,
				)
			}
			return resp, err
		}
	}
}

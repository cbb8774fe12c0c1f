// Package interceptors holds server interceptors shared by calculator gRPC
// handlers.
package interceptors

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/louisbranch/calculator/internal/platform/requestmeta"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Outcome labels a finished call in the log line.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeCanceled Outcome = "canceled"
	OutcomeError    Outcome = "error"
)

// Logf writes one formatted log line.
type Logf func(format string, args ...any)

// UnaryLoggingInterceptor writes one line per unary call.
func UnaryLoggingInterceptor(logf Logf) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(ctx, logf, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamLoggingInterceptor writes one line per streaming call, after the
// stream ends.
func StreamLoggingInterceptor(logf Logf) grpc.StreamServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, stream)
		logCall(stream.Context(), logf, info.FullMethod, start, err)
		return err
	}
}

// Classify reports how a call ended. A caller that withdrew interest, by
// cancelling or by letting its deadline pass, is canceled even when the
// handler returned nil. The code still tells the two apart.
func Classify(ctx context.Context, err error) (Outcome, codes.Code) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return OutcomeCanceled, status.FromContextError(err).Code()
	}
	code := status.Code(err)
	switch {
	case code == codes.Canceled:
		return OutcomeCanceled, code
	case err == nil && ctx.Err() != nil:
		return OutcomeCanceled, status.FromContextError(ctx.Err()).Code()
	case err != nil:
		return OutcomeError, code
	default:
		return OutcomeOK, codes.OK
	}
}

func logCall(ctx context.Context, logf Logf, method string, start time.Time, err error) {
	outcome, code := Classify(ctx, err)
	requestID := requestmeta.RequestIDFromContext(ctx)

	traceID := "-"
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	elapsed := time.Since(start).Round(time.Microsecond)
	if outcome == OutcomeError {
		logf("%s %s request_id=%s trace_id=%s code=%s duration=%s err=%v", outcome, method, requestID, traceID, code, elapsed, err)
		return
	}
	logf("%s %s request_id=%s trace_id=%s code=%s duration=%s", outcome, method, requestID, traceID, code, elapsed)
}

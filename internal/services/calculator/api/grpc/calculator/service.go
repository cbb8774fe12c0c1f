// Package calculator exposes the calculator.v1 gRPC operations.
package calculator

import (
	"context"
	"errors"
	"io"
	"time"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	apperrors "github.com/louisbranch/calculator/internal/platform/errors"
	"github.com/louisbranch/calculator/internal/platform/requestmeta"
	"github.com/louisbranch/calculator/internal/services/calculator/arithmetic"
	"github.com/louisbranch/calculator/internal/services/calculator/primes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Service implements calculator.v1.CalculatorService. It holds no per-call
// state, so one instance serves any number of concurrent calls.
type Service struct {
	calculatorv1.UnimplementedCalculatorServiceServer
	streamDelay time.Duration
}

// NewService creates a calculator service that paces StreamPrimeNumbers by
// streamDelay. A non-positive delay streams without pausing.
func NewService(streamDelay time.Duration) *Service {
	return &Service{streamDelay: max(streamDelay, 0)}
}

// Add returns addend1 + addend2.
func (s *Service) Add(ctx context.Context, in *calculatorv1.AddRequest) (*calculatorv1.AddResponse, error) {
	if err := checkUnary(ctx, in, "Add"); err != nil {
		return nil, err
	}
	return &calculatorv1.AddResponse{Sum: arithmetic.Add(in.GetAddend1(), in.GetAddend2())}, nil
}

// Sub returns minuend - subtrahend.
func (s *Service) Sub(ctx context.Context, in *calculatorv1.SubRequest) (*calculatorv1.SubResponse, error) {
	if err := checkUnary(ctx, in, "Sub"); err != nil {
		return nil, err
	}
	return &calculatorv1.SubResponse{Difference: arithmetic.Sub(in.GetMinuend(), in.GetSubtrahend())}, nil
}

// Mul returns multiplicand * multiplier.
func (s *Service) Mul(ctx context.Context, in *calculatorv1.MulRequest) (*calculatorv1.MulResponse, error) {
	if err := checkUnary(ctx, in, "Mul"); err != nil {
		return nil, err
	}
	return &calculatorv1.MulResponse{Product: arithmetic.Mul(in.GetMultiplicand(), in.GetMultiplier())}, nil
}

// Div returns dividend / divisor truncated toward zero. A zero divisor fails
// with InvalidArgument "Division by zero".
func (s *Service) Div(ctx context.Context, in *calculatorv1.DivRequest) (*calculatorv1.DivResponse, error) {
	if err := checkUnary(ctx, in, "Div"); err != nil {
		return nil, err
	}
	quotient, err := arithmetic.Div(in.GetDividend(), in.GetDivisor())
	if errors.Is(err, arithmetic.ErrDivisionByZero) {
		return nil, apperrors.HandleError(
			apperrors.Wrap(apperrors.CodeDivisionByZero, "Division by zero", err),
			requestmeta.LocaleFromContext(ctx),
		)
	}
	if err != nil {
		return nil, apperrors.HandleError(err, requestmeta.LocaleFromContext(ctx))
	}
	return &calculatorv1.DivResponse{Quotient: quotient}, nil
}

// Sum returns the sum of all addends, 0 for none.
func (s *Service) Sum(ctx context.Context, in *calculatorv1.SumRequest) (*calculatorv1.SumResponse, error) {
	if err := checkUnary(ctx, in, "Sum"); err != nil {
		return nil, err
	}
	return &calculatorv1.SumResponse{Sum: arithmetic.Sum(in.GetAddends())}, nil
}

// PrimeNumbers returns every prime in [start, end] ascending.
func (s *Service) PrimeNumbers(ctx context.Context, in *calculatorv1.PrimeNumbersRequest) (*calculatorv1.PrimeNumbersResponse, error) {
	if err := checkUnary(ctx, in, "PrimeNumbers"); err != nil {
		return nil, err
	}
	found, err := primes.InRange(ctx, in.GetStart(), in.GetEnd())
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}
	return &calculatorv1.PrimeNumbersResponse{PrimeNumbers: found}, nil
}

// StreamPrimeNumbers sends each prime in [start, end] as its own message,
// pausing between messages. A caller cancelling the stream ends the call
// normally; primes already sent stay delivered.
func (s *Service) StreamPrimeNumbers(in *calculatorv1.PrimeNumbersRequest, stream grpc.ServerStreamingServer[calculatorv1.PrimeNumber]) error {
	ctx := stream.Context()
	if in == nil {
		return requestRequired(ctx, "StreamPrimeNumbers")
	}

	span := trace.SpanFromContext(ctx)
	err := primes.Stream(ctx, in.GetStart(), in.GetEnd(), s.streamDelay, func(n int64) error {
		if err := stream.Send(&calculatorv1.PrimeNumber{Value: n}); err != nil {
			return err
		}
		span.AddEvent("prime.sent", trace.WithAttributes(attribute.Int64("calculator.prime", n)))
		return nil
	})
	if err != nil && ctx.Err() != nil {
		// The caller withdrew interest.
		return nil
	}
	return err
}

// CountPrimeNumbers reads values until the caller half-closes, then replies
// with how many were prime. Duplicates count each time. If the inbound stream
// fails, that error is returned and no count is sent.
func (s *Service) CountPrimeNumbers(stream grpc.ClientStreamingServer[calculatorv1.PrimeNumber, calculatorv1.PrimeNumbersCount]) error {
	span := trace.SpanFromContext(stream.Context())
	counter := primes.NewCounter()
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			span.SetAttributes(
				attribute.Int64("calculator.observed", counter.Observed()),
				attribute.Int64("calculator.primes", counter.Count()),
			)
			return stream.SendAndClose(&calculatorv1.PrimeNumbersCount{Count: counter.Count()})
		}
		if err != nil {
			return err
		}
		if counter.Observe(msg.GetValue()) {
			span.AddEvent("prime.counted", trace.WithAttributes(attribute.Int64("calculator.prime", msg.GetValue())))
		}
	}
}

// checkUnary rejects calls whose caller already gave up and nil requests.
func checkUnary[T any](ctx context.Context, in *T, method string) error {
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	if in == nil {
		return requestRequired(ctx, method)
	}
	return nil
}

func requestRequired(ctx context.Context, method string) error {
	return apperrors.HandleError(
		apperrors.WithMetadata(apperrors.CodeRequestRequired, method+" request is required", map[string]string{"Method": method}),
		requestmeta.LocaleFromContext(ctx),
	)
}

package calculator

import (
	"context"
	"errors"
	"io"
	"math"
	"slices"
	"testing"
	"time"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	apperrors "github.com/louisbranch/calculator/internal/platform/errors"
	"github.com/louisbranch/calculator/internal/platform/requestmeta"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestArithmeticOperations(t *testing.T) {
	svc := NewService(0)
	ctx := context.Background()

	add, err := svc.Add(ctx, &calculatorv1.AddRequest{Addend1: 2, Addend2: 3})
	if err != nil || add.GetSum() != 5 {
		t.Fatalf("Add(2, 3) = %v, %v", add, err)
	}
	sub, err := svc.Sub(ctx, &calculatorv1.SubRequest{Minuend: 2, Subtrahend: 5})
	if err != nil || sub.GetDifference() != -3 {
		t.Fatalf("Sub(2, 5) = %v, %v", sub, err)
	}
	mul, err := svc.Mul(ctx, &calculatorv1.MulRequest{Multiplicand: -4, Multiplier: 6})
	if err != nil || mul.GetProduct() != -24 {
		t.Fatalf("Mul(-4, 6) = %v, %v", mul, err)
	}
	div, err := svc.Div(ctx, &calculatorv1.DivRequest{Dividend: -7, Divisor: 2})
	if err != nil || div.GetQuotient() != -3 {
		t.Fatalf("Div(-7, 2) = %v, %v", div, err)
	}
	sum, err := svc.Sum(ctx, &calculatorv1.SumRequest{Addends: []int64{1, 2, 3, 4}})
	if err != nil || sum.GetSum() != 10 {
		t.Fatalf("Sum(1..4) = %v, %v", sum, err)
	}
}

func TestAddWrapsOnOverflow(t *testing.T) {
	resp, err := NewService(0).Add(context.Background(), &calculatorv1.AddRequest{Addend1: math.MaxInt64, Addend2: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.GetSum() != math.MinInt64 {
		t.Fatalf("sum = %d, want %d", resp.GetSum(), int64(math.MinInt64))
	}
}

func TestSumOfNoAddendsIsZero(t *testing.T) {
	resp, err := NewService(0).Sum(context.Background(), &calculatorv1.SumRequest{})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if resp.GetSum() != 0 {
		t.Fatalf("sum = %d, want 0", resp.GetSum())
	}
}

func TestDivByZero(t *testing.T) {
	_, err := NewService(0).Div(context.Background(), &calculatorv1.DivRequest{Dividend: 10, Divisor: 0})

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	if st.Message() != "Division by zero" {
		t.Fatalf("message = %q, want %q", st.Message(), "Division by zero")
	}
	if apperrors.CodeFromStatus(st) != apperrors.CodeDivisionByZero {
		t.Fatalf("expected %s reason", apperrors.CodeDivisionByZero)
	}
}

func TestDivByZeroLocalized(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestmeta.LocaleHeader, "pl-PL"))
	_, err := NewService(0).Div(ctx, &calculatorv1.DivRequest{Dividend: 1, Divisor: 0})

	st, _ := status.FromError(err)
	if st.Message() != "Division by zero" {
		t.Fatalf("status message must stay untranslated, got %q", st.Message())
	}
	if got := apperrors.LocalizedMessage(st); got != "Dzielenie przez zero" {
		t.Fatalf("localized message = %q", got)
	}
}

func TestNilRequests(t *testing.T) {
	svc := NewService(0)
	ctx := context.Background()

	calls := map[string]func() error{
		"Add":          func() error { _, err := svc.Add(ctx, nil); return err },
		"Sub":          func() error { _, err := svc.Sub(ctx, nil); return err },
		"Mul":          func() error { _, err := svc.Mul(ctx, nil); return err },
		"Div":          func() error { _, err := svc.Div(ctx, nil); return err },
		"Sum":          func() error { _, err := svc.Sum(ctx, nil); return err },
		"PrimeNumbers": func() error { _, err := svc.PrimeNumbers(ctx, nil); return err },
		"StreamPrimeNumbers": func() error {
			return svc.StreamPrimeNumbers(nil, &fakePrimeStream{ctx: ctx})
		},
	}
	for method, call := range calls {
		st, _ := status.FromError(call())
		if st.Code() != codes.InvalidArgument {
			t.Fatalf("%s: code = %v, want %v", method, st.Code(), codes.InvalidArgument)
		}
		if want := method + " request is required"; st.Message() != want {
			t.Fatalf("%s: message = %q, want %q", method, st.Message(), want)
		}
	}
}

func TestUnaryRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(0).Add(ctx, &calculatorv1.AddRequest{Addend1: 1, Addend2: 1})
	if status.Code(err) != codes.Canceled {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Canceled)
	}
	_, err = NewService(0).PrimeNumbers(ctx, &calculatorv1.PrimeNumbersRequest{Start: 2, End: 100})
	if status.Code(err) != codes.Canceled {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Canceled)
	}
}

func TestPrimeNumbers(t *testing.T) {
	tcs := []struct {
		start, end int64
		want       []int64
	}{
		{start: 10, end: 20, want: []int64{11, 13, 17, 19}},
		{start: 2, end: 10, want: []int64{2, 3, 5, 7}},
		{start: -5, end: 2, want: []int64{2}},
		{start: 20, end: 10, want: nil},
		{start: 14, end: 16, want: nil},
	}
	for _, tc := range tcs {
		resp, err := NewService(0).PrimeNumbers(context.Background(), &calculatorv1.PrimeNumbersRequest{Start: tc.start, End: tc.end})
		if err != nil {
			t.Fatalf("PrimeNumbers(%d, %d): %v", tc.start, tc.end, err)
		}
		if got := resp.GetPrimeNumbers(); !slices.Equal(got, tc.want) {
			t.Fatalf("PrimeNumbers(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

type fakePrimeStream struct {
	grpc.ServerStream
	ctx     context.Context
	sent    []int64
	sentAt  []time.Time
	onSend  func(count int)
	sendErr error
}

func (s *fakePrimeStream) Context() context.Context { return s.ctx }

func (s *fakePrimeStream) Send(msg *calculatorv1.PrimeNumber) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg.GetValue())
	s.sentAt = append(s.sentAt, time.Now())
	if s.onSend != nil {
		s.onSend(len(s.sent))
	}
	return nil
}

func TestStreamPrimeNumbersMatchesPrimeNumbers(t *testing.T) {
	svc := NewService(0)
	stream := &fakePrimeStream{ctx: context.Background()}

	if err := svc.StreamPrimeNumbers(&calculatorv1.PrimeNumbersRequest{Start: 1, End: 50}, stream); err != nil {
		t.Fatalf("stream: %v", err)
	}
	list, err := svc.PrimeNumbers(context.Background(), &calculatorv1.PrimeNumbersRequest{Start: 1, End: 50})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !slices.Equal(stream.sent, list.GetPrimeNumbers()) {
		t.Fatalf("stream = %v, list = %v", stream.sent, list.GetPrimeNumbers())
	}
}

func TestStreamPrimeNumbersPacesMessages(t *testing.T) {
	delay := 30 * time.Millisecond
	stream := &fakePrimeStream{ctx: context.Background()}

	if err := NewService(delay).StreamPrimeNumbers(&calculatorv1.PrimeNumbersRequest{Start: 2, End: 10}, stream); err != nil {
		t.Fatalf("stream: %v", err)
	}
	if !slices.Equal(stream.sent, []int64{2, 3, 5, 7}) {
		t.Fatalf("sent = %v", stream.sent)
	}
	for i := 1; i < len(stream.sentAt); i++ {
		if gap := stream.sentAt[i].Sub(stream.sentAt[i-1]); gap < delay {
			t.Fatalf("gap %d = %v, want >= %v", i, gap, delay)
		}
	}
}

func TestStreamPrimeNumbersCancellationEndsNormally(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &fakePrimeStream{ctx: ctx}
	stream.onSend = func(count int) {
		if count == 2 {
			cancel()
		}
	}

	err := NewService(time.Millisecond).StreamPrimeNumbers(&calculatorv1.PrimeNumbersRequest{Start: 2, End: 1000}, stream)
	if err != nil {
		t.Fatalf("expected cancellation to end normally, got %v", err)
	}
	if !slices.Equal(stream.sent, []int64{2, 3}) {
		t.Fatalf("sent after cancel = %v", stream.sent)
	}
}

func TestStreamPrimeNumbersReturnsSendError(t *testing.T) {
	sendErr := status.Error(codes.Unavailable, "transport closing")
	stream := &fakePrimeStream{ctx: context.Background(), sendErr: sendErr}

	err := NewService(0).StreamPrimeNumbers(&calculatorv1.PrimeNumbersRequest{Start: 2, End: 10}, stream)
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected send error, got %v", err)
	}
}

type fakeCountStream struct {
	grpc.ServerStream
	values []int64
	tail   error
	reply  *calculatorv1.PrimeNumbersCount
	closes int
}

func (s *fakeCountStream) Context() context.Context { return context.Background() }

func (s *fakeCountStream) Recv() (*calculatorv1.PrimeNumber, error) {
	if len(s.values) == 0 {
		if s.tail != nil {
			return nil, s.tail
		}
		return nil, io.EOF
	}
	v := s.values[0]
	s.values = s.values[1:]
	return &calculatorv1.PrimeNumber{Value: v}, nil
}

func (s *fakeCountStream) SendAndClose(reply *calculatorv1.PrimeNumbersCount) error {
	s.reply = reply
	s.closes++
	return nil
}

func TestCountPrimeNumbers(t *testing.T) {
	tcs := []struct {
		name   string
		values []int64
		want   int64
	}{
		{name: "mixed", values: []int64{2, 3, 4, 5, 11}, want: 4},
		{name: "duplicates", values: []int64{7, 7, 7}, want: 3},
		{name: "none prime", values: []int64{-7, 0, 1, 4, 9}, want: 0},
		{name: "empty", values: nil, want: 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			stream := &fakeCountStream{values: tc.values}
			if err := NewService(0).CountPrimeNumbers(stream); err != nil {
				t.Fatalf("count: %v", err)
			}
			if stream.closes != 1 {
				t.Fatalf("SendAndClose called %d times", stream.closes)
			}
			if got := stream.reply.GetCount(); got != tc.want {
				t.Fatalf("count = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCountPrimeNumbersPropagatesUpstreamError(t *testing.T) {
	upstream := status.Error(codes.Canceled, "client went away")
	stream := &fakeCountStream{values: []int64{2, 3, 5}, tail: upstream}

	err := NewService(0).CountPrimeNumbers(stream)
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if stream.closes != 0 {
		t.Fatal("expected no count after upstream error")
	}
}

func TestCountPrimeNumbersCallsAreIndependent(t *testing.T) {
	svc := NewService(0)

	first := &fakeCountStream{values: []int64{2, 3, 5}}
	second := &fakeCountStream{values: []int64{11}}
	if err := svc.CountPrimeNumbers(first); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := svc.CountPrimeNumbers(second); err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.reply.GetCount() != 3 || second.reply.GetCount() != 1 {
		t.Fatalf("counts = %d, %d, want 3, 1", first.reply.GetCount(), second.reply.GetCount())
	}
}

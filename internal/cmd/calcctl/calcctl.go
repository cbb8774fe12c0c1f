// Package calcctl implements the calculator command-line client.
package calcctl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	entrypoint "github.com/louisbranch/calculator/internal/platform/cmd"
	"github.com/louisbranch/calculator/internal/platform/discovery"
	apperrors "github.com/louisbranch/calculator/internal/platform/errors"
	platformgrpc "github.com/louisbranch/calculator/internal/platform/grpc"
	"github.com/louisbranch/calculator/internal/platform/requestmeta"
	"github.com/louisbranch/calculator/internal/platform/timeouts"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Config holds client defaults read from the environment.
type Config struct {
	Addr        string        `env:"ADDR"`
	Locale      string        `env:"LOCALE"`
	Timeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
}

// LoadConfig reads CALCULATOR_ADDR, CALCULATOR_LOCALE,
// CALCULATOR_CLIENT_TIMEOUT and CALCULATOR_DIAL_TIMEOUT.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceCalculator)
	return cfg, nil
}

type app struct {
	cfg Config
}

// NewRootCmd builds the calcctl command tree.
func NewRootCmd(cfg Config) *cobra.Command {
	cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceCalculator)
	if cfg.Timeout <= 0 {
		cfg.Timeout = timeouts.GRPCRequest
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = timeouts.GRPCDial
	}
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "calcctl",
		Short:         "Call a calculator gRPC server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Addr, "addr", a.cfg.Addr, "calculator server address")
	flags.StringVar(&a.cfg.Locale, "locale", a.cfg.Locale, "locale for error messages, e.g. pl-PL")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "deadline for unary calls")
	flags.DurationVar(&a.cfg.DialTimeout, "dial-timeout", a.cfg.DialTimeout, "wait for the server to report SERVING")

	root.AddCommand(
		a.newAddCmd(),
		a.newSubCmd(),
		a.newMulCmd(),
		a.newDivCmd(),
		a.newSumCmd(),
		a.newPrimesCmd(),
		a.newStreamPrimesCmd(),
		a.newCountPrimesCmd(),
		newDescribeCmd(),
	)
	return root
}

// connect dials the server and waits for the calculator service to report
// SERVING. The returned close function releases the connection.
func (a *app) connect(ctx context.Context) (calculatorv1.CalculatorServiceClient, func(), error) {
	opts := append(platformgrpc.DefaultClientDialOptions(),
		grpc.WithChainUnaryInterceptor(requestmeta.UnaryClientInterceptor(a.cfg.Locale)),
		grpc.WithChainStreamInterceptor(requestmeta.StreamClientInterceptor(a.cfg.Locale)),
	)
	conn, err := platformgrpc.DialWithHealth(ctx, nil, a.cfg.Addr, calculatorv1.CalculatorService_ServiceDesc.ServiceName, a.cfg.DialTimeout, nil, opts...)
	if err != nil {
		return nil, nil, err
	}
	return calculatorv1.NewCalculatorServiceClient(conn), func() { _ = conn.Close() }, nil
}

// unary runs call against a fresh connection under the unary deadline.
func (a *app) unary(cmd *cobra.Command, call func(context.Context, calculatorv1.CalculatorServiceClient) error) error {
	client, closeConn, err := a.connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closeConn()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
	defer cancel()
	return describeError(call(ctx, client))
}

// describeError renders gRPC failures with the server's localized message.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	return &CallError{Code: st.Code().String(), Reason: string(apperrors.CodeFromStatus(st)), Message: apperrors.LocalizedMessage(st)}
}

// CallError is a failed calculator call as reported to the user.
type CallError struct {
	Code    string
	Reason  string
	Message string
}

func (e *CallError) Error() string {
	if e.Reason == "" || e.Reason == string(apperrors.CodeUnknown) {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Reason, e.Message)
}

func parseInts(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a 64-bit integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

package calcctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (a *app) newPrimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes START END",
		Short: "List the primes in [START, END] in one response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseInts(args)
			if err != nil {
				return err
			}
			return a.unary(cmd, func(ctx context.Context, client calculatorv1.CalculatorServiceClient) error {
				resp, err := client.PrimeNumbers(ctx, &calculatorv1.PrimeNumbersRequest{Start: bounds[0], End: bounds[1]})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, p := range resp.GetPrimeNumbers() {
					if _, err := fmt.Fprintln(out, p); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) newStreamPrimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream-primes START END",
		Short: "Print the primes in [START, END] as the server streams them",
		Long:  "Print the primes in [START, END] as the server streams them. Interrupting the command cancels the stream.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseInts(args)
			if err != nil {
				return err
			}
			client, closeConn, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeConn()

			stream, err := client.StreamPrimeNumbers(cmd.Context(), &calculatorv1.PrimeNumbersRequest{Start: bounds[0], End: bounds[1]})
			if err != nil {
				return describeError(err)
			}
			out := cmd.OutOrStdout()
			for {
				msg, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if status.Code(err) == codes.Canceled && cmd.Context().Err() != nil {
					// Interrupted by the user.
					return nil
				}
				if err != nil {
					return describeError(err)
				}
				if _, err := fmt.Fprintln(out, msg.GetValue()); err != nil {
					return err
				}
			}
		},
	}
}

func (a *app) newCountPrimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count-primes [VALUE...]",
		Short: "Stream values to the server and print how many were prime",
		Long:  "Stream values to the server and print how many were prime. Without arguments, values are read one per line from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var values []int64
			var err error
			if len(args) > 0 {
				values, err = parseInts(args)
			} else {
				values, err = readValues(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			client, closeConn, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			stream, err := client.CountPrimeNumbers(ctx)
			if err != nil {
				return describeError(err)
			}
			for _, v := range values {
				if err := stream.Send(&calculatorv1.PrimeNumber{Value: v}); err != nil {
					// The real status surfaces from CloseAndRecv.
					if errors.Is(err, io.EOF) {
						break
					}
					return describeError(err)
				}
			}
			reply, err := stream.CloseAndRecv()
			if err != nil {
				return describeError(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.GetCount())
			return err
		},
	}
}

// readValues parses one integer per line, skipping blank lines.
func readValues(r io.Reader) ([]int64, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields = append(fields, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return parseInts(fields)
}

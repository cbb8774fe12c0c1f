package calcctl

import (
	"context"
	"fmt"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	"github.com/spf13/cobra"
)

// binaryCmd builds a two-operand command printing the single result.
func (a *app) binaryCmd(use, short string, call func(context.Context, calculatorv1.CalculatorServiceClient, int64, int64) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseInts(args)
			if err != nil {
				return err
			}
			return a.unary(cmd, func(ctx context.Context, client calculatorv1.CalculatorServiceClient) error {
				result, err := call(ctx, client, operands[0], operands[1])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
				return err
			})
		},
	}
}

func (a *app) newAddCmd() *cobra.Command {
	return a.binaryCmd("add ADDEND1 ADDEND2", "Add two integers", func(ctx context.Context, client calculatorv1.CalculatorServiceClient, x, y int64) (int64, error) {
		resp, err := client.Add(ctx, &calculatorv1.AddRequest{Addend1: x, Addend2: y})
		return resp.GetSum(), err
	})
}

func (a *app) newSubCmd() *cobra.Command {
	return a.binaryCmd("sub MINUEND SUBTRAHEND", "Subtract two integers", func(ctx context.Context, client calculatorv1.CalculatorServiceClient, x, y int64) (int64, error) {
		resp, err := client.Sub(ctx, &calculatorv1.SubRequest{Minuend: x, Subtrahend: y})
		return resp.GetDifference(), err
	})
}

func (a *app) newMulCmd() *cobra.Command {
	return a.binaryCmd("mul MULTIPLICAND MULTIPLIER", "Multiply two integers", func(ctx context.Context, client calculatorv1.CalculatorServiceClient, x, y int64) (int64, error) {
		resp, err := client.Mul(ctx, &calculatorv1.MulRequest{Multiplicand: x, Multiplier: y})
		return resp.GetProduct(), err
	})
}

func (a *app) newDivCmd() *cobra.Command {
	return a.binaryCmd("div DIVIDEND DIVISOR", "Divide two integers, truncating toward zero", func(ctx context.Context, client calculatorv1.CalculatorServiceClient, x, y int64) (int64, error) {
		resp, err := client.Div(ctx, &calculatorv1.DivRequest{Dividend: x, Divisor: y})
		return resp.GetQuotient(), err
	})
}

func (a *app) newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [ADDEND...]",
		Short: "Sum any number of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			addends, err := parseInts(args)
			if err != nil {
				return err
			}
			return a.unary(cmd, func(ctx context.Context, client calculatorv1.CalculatorServiceClient) error {
				resp, err := client.Sum(ctx, &calculatorv1.SumRequest{Addends: addends})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.GetSum())
				return err
			})
		},
	}
}

package calcctl

import (
	"fmt"
	"io"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List the calculator methods and their call shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return describeServices(cmd.OutOrStdout(), calculatorv1.File_calculator_v1_calculator_proto)
		},
	}
}

func describeServices(w io.Writer, fd protoreflect.FileDescriptor) error {
	services := fd.Services()
	for i := 0; i < services.Len(); i++ {
		service := services.Get(i)
		if _, err := fmt.Fprintf(w, "service %s\n", service.FullName()); err != nil {
			return err
		}
		methods := service.Methods()
		for j := 0; j < methods.Len(); j++ {
			if _, err := fmt.Fprintf(w, "  %s\n", methodSignature(methods.Get(j))); err != nil {
				return err
			}
		}
	}
	return nil
}

func methodSignature(md protoreflect.MethodDescriptor) string {
	in := string(md.Input().Name())
	if md.IsStreamingClient() {
		in = "stream " + in
	}
	out := string(md.Output().Name())
	if md.IsStreamingServer() {
		out = "stream " + out
	}
	return fmt.Sprintf("rpc %s(%s) returns (%s)", md.Name(), in, out)
}

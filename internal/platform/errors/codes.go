// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeDivisionByZero rejects a division whose divisor is zero.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	// CodeRequestRequired rejects a call that carried no request message.
	CodeRequestRequired Code = "REQUEST_REQUIRED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeDivisionByZero,
		CodeRequestRequired:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// Package timeouts defines shared timeout constants used by the calculator
// server and client.
package timeouts

import "time"

// GRPCDial caps the wait for a server to report SERVING after dialing.
const GRPCDial = 5 * time.Second

// GRPCRequest is the default deadline for a single unary call from calcctl.
const GRPCRequest = 10 * time.Second

// Shutdown bounds graceful server shutdown before in-flight calls are
// force-stopped.
const Shutdown = 30 * time.Second

// Package discovery centralizes service address conventions.
package discovery

import (
	"net"
	"strconv"
	"strings"
)

// ServiceCalculator is the calculator gRPC service identity.
const ServiceCalculator = "calculator"

// DefaultHost is where clients look for a service when no address is set.
const DefaultHost = "localhost"

var grpcPorts = map[string]int{
	ServiceCalculator: 50051,
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or 0.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns the conventional local gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	port := DefaultGRPCPort(service)
	if port <= 0 {
		return ""
	}
	return net.JoinHostPort(DefaultHost, strconv.Itoa(port))
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

// Package main runs the calculator command-line client.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	calcctlcmd "github.com/louisbranch/calculator/internal/cmd/calcctl"
	entrypoint "github.com/louisbranch/calculator/internal/platform/cmd"
	"github.com/louisbranch/calculator/internal/platform/config"
)

func main() {
	cfg, err := calcctlcmd.LoadConfig()
	if err != nil {
		config.Exitf("calcctl: %v", err)
	}
	log.SetPrefix("[CALCCTL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := calcctlcmd.NewRootCmd(cfg)
	root.SetArgs(os.Args[1:])
	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalcctl, root.ExecuteContext)
	stop()
	if err != nil {
		config.Exitf("calcctl: %v", err)
	}
}

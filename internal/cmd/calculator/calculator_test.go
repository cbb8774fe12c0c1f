package calculator

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("calculator", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("port = %d, want 50051", cfg.Port)
	}
	if cfg.StreamDelay != 500*time.Millisecond {
		t.Fatalf("stream delay = %s, want 500ms", cfg.StreamDelay)
	}
	if !cfg.Reflection {
		t.Fatal("expected reflection on by default")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("shutdown timeout = %s, want 30s", cfg.ShutdownTimeout)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("CALCULATOR_PORT", "6000")
	t.Setenv("CALCULATOR_STREAM_DELAY", "1s")
	t.Setenv("CALCULATOR_REFLECTION", "false")

	cfg, err := ParseConfig(flag.NewFlagSet("calculator", flag.ContinueOnError), []string{"-port", "7000"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 7000 {
		t.Fatalf("expected flag to override env port, got %d", cfg.Port)
	}
	if cfg.StreamDelay != time.Second {
		t.Fatalf("stream delay = %s, want 1s", cfg.StreamDelay)
	}
	if cfg.Reflection {
		t.Fatal("expected reflection disabled from env")
	}

	serverCfg := cfg.ServerConfig()
	if serverCfg.StreamDelay != time.Second || serverCfg.Reflection || serverCfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("unexpected server config: %+v", serverCfg)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	if _, err := ParseConfig(flag.NewFlagSet("calculator", flag.ContinueOnError), []string{"-stream-delay", "-1s"}); err == nil {
		t.Fatal("expected negative stream delay to fail")
	}
	if _, err := ParseConfig(flag.NewFlagSet("calculator", flag.ContinueOnError), []string{"-port", "70000"}); err == nil {
		t.Fatal("expected out of range port to fail")
	}

	t.Setenv("CALCULATOR_PORT", "not-a-port")
	if _, err := ParseConfig(flag.NewFlagSet("calculator", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected invalid env port to fail")
	}
}

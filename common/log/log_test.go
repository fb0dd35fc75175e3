package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	ReplaceGlobal(zaptest.NewLogger(t))
	defer func() { _ = Sync() }()

	Info("info message", String("k", "v"))
	Debug("debug message", Int("n", 1))
	Warn("warn message", Int64("n64", 2))
	Error("error message", Bool("b", true))
}

func TestInitAppliesOptions(t *testing.T) {
	saved := logger
	defer func() { logger = saved }()

	observedCore, observed := observer.New(zapcore.InfoLevel)
	err := Init(
		WrapCore(func(zapcore.Core) zapcore.Core { return observedCore }),
		Fields(String("service", "colfilter")),
	)
	if err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	Info("hello")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["service"]; got != "colfilter" {
		t.Fatalf("expected service field from Fields() option, got %v", got)
	}
}

func TestPanicLogsThenPanics(t *testing.T) {
	ReplaceGlobal(zaptest.NewLogger(t))
	defer func() { _ = Sync() }()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Panic to panic")
		}
	}()
	Panic("panic message")
}

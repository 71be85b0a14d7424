package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q): want %v got %v", in, want, got)
		}
	}
}

func TestLoggerWritesKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "test")

	l.Info("listing created", "id", "abc")
	l.Warn("cache miss")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "test" || ctx["id"] != "abc" {
		t.Fatalf("unexpected context: %#v", ctx)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level got %v", entries[1].Level)
	}
}

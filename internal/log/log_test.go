package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"info", false},
		{"DEBUG", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
		{"verbose", true},
	}
	for _, tt := range tests {
		err := SetLevel(tt.level)
		if (err != nil) != tt.wantErr {
			t.Fatalf("SetLevel(%q) error = %v, wantErr %t", tt.level, err, tt.wantErr)
		}
	}
	if err := SetLevel("info"); err != nil {
		t.Fatalf("restore level: %v", err)
	}
}

func TestReplaceLoggerCaptures(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer ReplaceLogger(original)

	ReplaceLogger(slog.New(newHandler(&buf)))
	Info(context.Background(), "collection saved", "perfumes", 3)

	out := buf.String()
	if !strings.Contains(out, "msg=\"collection saved\"") {
		t.Fatalf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "perfumes=3") {
		t.Fatalf("log output missing attribute: %q", out)
	}
	if !strings.Contains(out, "level=info") {
		t.Fatalf("log output missing level: %q", out)
	}
}

func TestReplaceLoggerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil logger")
		}
	}()
	ReplaceLogger(nil)
}

func TestNilContextDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer ReplaceLogger(original)
	ReplaceLogger(slog.New(newHandler(&buf)))

	Debug(nil, "debug message") //nolint:staticcheck
	Error(nil, "error message") //nolint:staticcheck

	if !strings.Contains(buf.String(), "error message") {
		t.Fatalf("error log missing: %q", buf.String())
	}
}

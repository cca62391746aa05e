package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("expected single handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsEachLevel(t *testing.T) {
	var consoleBuf, fileBuf bytes.Buffer
	consoleLevel := new(slog.LevelVar)
	consoleLevel.Set(slog.LevelWarn)
	fileLevel := new(slog.LevelVar)
	fileLevel.Set(slog.LevelDebug)

	h := newFanoutHandler(
		newPrettyHandler(&consoleBuf, consoleLevel, false),
		newJSONHandler(&fileBuf, fileLevel, false),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected fanout enabled when any handler accepts debug")
	}

	logger := slog.New(h)
	logger.Info("config persisted", FieldPath, "/tmp/app.json")

	if consoleBuf.Len() != 0 {
		t.Fatalf("expected warn-level console to skip info, got %q", consoleBuf.String())
	}
	if !strings.Contains(fileBuf.String(), `"path":"/tmp/app.json"`) {
		t.Fatalf("expected json handler to receive record, got %q", fileBuf.String())
	}
}

func TestFanoutHandlerWithAttrsReachesAllHandlers(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	logger := slog.New(newFanoutHandler(
		slog.NewJSONHandler(&buf1, nil),
		slog.NewJSONHandler(&buf2, nil),
	)).With(FieldComponent, "jsonconfig").WithGroup("reconcile")

	logger.Info("done", "state", "valid")

	for i, out := range []string{buf1.String(), buf2.String()} {
		if !strings.Contains(out, `"component":"jsonconfig"`) || !strings.Contains(out, `"reconcile":{"state":"valid"}`) {
			t.Fatalf("handler %d missing attrs or group: %s", i, out)
		}
	}
}

func TestTeeLogger(t *testing.T) {
	var baseBuf, teeBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&baseBuf, nil))

	TeeLogger(base, slog.NewJSONHandler(&teeBuf, nil)).Info("hello")
	if !strings.Contains(baseBuf.String(), "hello") || !strings.Contains(teeBuf.String(), "hello") {
		t.Fatalf("expected both outputs to receive the record: %q / %q", baseBuf.String(), teeBuf.String())
	}

	teeBuf.Reset()
	TeeLogger(nil, slog.NewJSONHandler(&teeBuf, nil)).Info("solo")
	if !strings.Contains(teeBuf.String(), "solo") {
		t.Fatalf("expected tee handler output with nil base, got %q", teeBuf.String())
	}
}

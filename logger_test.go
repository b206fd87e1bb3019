package shapes2d

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	test.That(t, l != nil)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		test.That(t, !l.Enabled(context.Background(), level), "silent at", level)
	}
	test.Error(t, nopHandler{}.Handle(context.Background(), slog.Record{}))
	_, ok := nopHandler{}.WithGroup("group").(nopHandler)
	test.That(t, ok)
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	test.That(t, Logger() == custom)

	s, _ := Rectangle(1.0, 1.0)
	NewBatch(s).Draw(&recorder{})
	test.That(t, strings.Contains(buf.String(), "triangulated"), buf.String())
	test.That(t, strings.Contains(buf.String(), "batch drawn"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError), "nil restores the silent logger")
}

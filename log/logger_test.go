package log

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Fatalf("unexpected output at info level: %q", out)
	}

	buf.Reset()
	l.SetLevel(LevelDebug)
	l.Debugf("debug now")
	if !strings.Contains(buf.String(), "debug now") {
		t.Fatalf("expected debug entry after SetLevel(LevelDebug), got %q", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelOff)
	l.Errorf("silenced")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at LevelOff, got %q", buf.String())
	}
}

func TestZapLoggerTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, LevelDebug).Warnf("careful")
	out := buf.String()
	if !strings.Contains(out, "MoIP") || !strings.Contains(out, "WARN") {
		t.Fatalf("expected MoIP name and WARN level in %q", out)
	}
}

func TestWrapGatesForeignCore(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core))

	l.Debugf("first")
	l.SetLevel(LevelWarn)
	l.Infof("dropped")
	l.Errorf("kept")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Message != "first" || entries[1].Message != "kept" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *ZapLogger
	l.SetLevel(LevelDebug)
	l.Infof("nothing")
	if err := l.Sync(); err != nil {
		t.Fatalf("sync on nil logger: %v", err)
	}
}

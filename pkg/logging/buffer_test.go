package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestBufferWrapsWhenFull(t *testing.T) {
	b := NewBuffer(3)
	for i := 0; i < 5; i++ {
		b.Add(Record{Message: fmt.Sprintf("msg-%d", i)})
	}

	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}

	got := b.Latest(10)
	want := []string{"msg-4", "msg-3", "msg-2"}
	if len(got) != len(want) {
		t.Fatalf("Latest returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Message != want[i] {
			t.Errorf("Latest[%d] = %q, want %q", i, got[i].Message, want[i])
		}
	}
}

func TestBufferLatestLimits(t *testing.T) {
	b := NewBuffer(8)
	if got := b.Latest(4); got != nil {
		t.Errorf("Latest on empty buffer = %v, want nil", got)
	}
	b.Add(Record{Message: "only"})
	got := b.Latest(4)
	if len(got) != 1 || got[0].Message != "only" {
		t.Errorf("Latest = %v, want single record", got)
	}
}

func TestBufferHandlerCapturesRecords(t *testing.T) {
	buf := NewBuffer(16)
	base := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewBufferHandler(base, buf))

	logger.Info("resource domain acquired", "domain", "network-binding")
	logger.Error("counter read failed", "err", "mailbox timeout")

	got := buf.Latest(2)
	if len(got) != 2 {
		t.Fatalf("captured %d records, want 2", len(got))
	}
	if got[0].Level != slog.LevelError.String() || got[0].Message != "counter read failed" {
		t.Errorf("newest record = %+v", got[0])
	}
	if got[0].Attrs["err"] != "mailbox timeout" {
		t.Errorf("attrs = %v, want err=mailbox timeout", got[0].Attrs)
	}
	if got[1].Attrs["domain"] != "network-binding" {
		t.Errorf("attrs = %v, want domain=network-binding", got[1].Attrs)
	}
	if got[0].Time.IsZero() || time.Since(got[0].Time) > time.Minute {
		t.Errorf("record time implausible: %v", got[0].Time)
	}
}

func TestBufferHandlerWithAttrsAndGroup(t *testing.T) {
	buf := NewBuffer(16)
	base := slog.NewTextHandler(io.Discard, nil)
	h := NewBufferHandler(base, buf).
		WithAttrs([]slog.Attr{slog.String("backend", "sim")}).
		WithGroup("stage")

	logger := slog.New(h)
	logger.Info("acquired", "domain", "device-runtime")

	got := buf.Latest(1)
	if len(got) != 1 {
		t.Fatal("no record captured")
	}
	if got[0].Attrs["backend"] != "sim" {
		t.Errorf("pre-attrs missing: %v", got[0].Attrs)
	}
	if got[0].Attrs["stage.domain"] != "device-runtime" {
		t.Errorf("grouped attr missing: %v", got[0].Attrs)
	}
}

func TestBufferHandlerRespectsBaseLevel(t *testing.T) {
	buf := NewBuffer(16)
	base := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewBufferHandler(base, buf)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled despite info-level base")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info disabled")
	}
}

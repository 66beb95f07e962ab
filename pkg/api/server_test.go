package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dpax/l2reflect/pkg/lifecycle"
	"github.com/dpax/l2reflect/pkg/logging"
	"github.com/dpax/l2reflect/pkg/telemetry"
)

func testServer(t *testing.T) (*Server, *lifecycle.Stack) {
	t.Helper()
	stack := lifecycle.NewStack()
	var stages []lifecycle.Stage
	for _, d := range lifecycle.Domains() {
		stages = append(stages, lifecycle.Stage{
			Domain: d,
			Acquire: func(context.Context) (func() error, error) {
				return func() error { return nil }, nil
			},
		})
	}
	if err := lifecycle.NewManager(stages...).Acquire(context.Background(), stack); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	mon := telemetry.New(telemetry.ReaderFunc(func(context.Context) (uint64, error) {
		return 0, nil
	}), 60*time.Second, 2*time.Second)

	s := NewServer(Config{
		Addr:    "127.0.0.1:0",
		Device:  "mlx5_0",
		Backend: "sim",
		Stack:   stack,
		Monitor: mon,
	})
	return s, stack
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := testServer(t)
	w := get(t, s, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	s, stack := testServer(t)

	w := get(t, s, "/api/v1/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp statusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Device != "mlx5_0" || resp.Backend != "sim" {
		t.Errorf("identity = %s/%s, want mlx5_0/sim", resp.Device, resp.Backend)
	}
	if !resp.Running {
		t.Error("Running = false with steering rules held")
	}
	if resp.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %v, want 60", resp.WindowSeconds)
	}
	if len(resp.Stages) != len(lifecycle.Domains()) {
		t.Fatalf("got %d stages, want %d", len(resp.Stages), len(lifecycle.Domains()))
	}

	stack.Release()
	w = get(t, s, "/api/v1/status")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Running {
		t.Error("Running = true after release")
	}
}

func TestTelemetryEndpoint(t *testing.T) {
	s, _ := testServer(t)

	w := get(t, s, "/api/v1/telemetry")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp telemetryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalPackets != 0 {
		t.Errorf("TotalPackets = %d before first sample", resp.TotalPackets)
	}
	if resp.PerSecond == nil {
		t.Error("PerSecond serialized as null, want empty array")
	}
}

func TestLogsEndpoint(t *testing.T) {
	s, _ := testServer(t)

	// No buffer configured: still a valid empty array.
	w := get(t, s, "/api/v1/logs")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var recs []logging.Record
	if err := json.Unmarshal(w.Body.Bytes(), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records without a buffer, want 0", len(recs))
	}

	buf := logging.NewBuffer(8)
	buf.Add(logging.Record{Message: "first"})
	buf.Add(logging.Record{Message: "second"})
	s.cfg.Logs = buf

	w = get(t, s, "/api/v1/logs?n=1")
	if err := json.Unmarshal(w.Body.Bytes(), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recs) != 1 || recs[0].Message != "second" {
		t.Errorf("records = %+v, want newest only", recs)
	}

	if w := get(t, s, "/api/v1/logs?n=bogus"); w.Code != http.StatusBadRequest {
		t.Errorf("bad n: status = %d, want 400", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := testServer(t)

	w := get(t, s, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{
		"l2reflect_processed_packets_total",
		"l2reflect_observation_window_seconds",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

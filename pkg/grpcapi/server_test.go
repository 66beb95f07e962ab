package grpcapi

import (
	"context"
	"testing"
	"time"

	pb "github.com/dpax/l2reflect/pkg/grpcapi/l2reflectv1"
	"github.com/dpax/l2reflect/pkg/lifecycle"
	"github.com/dpax/l2reflect/pkg/telemetry"
)

// acquireAll pushes all four domains onto a fresh stack with no-op guards.
func acquireAll(t *testing.T) *lifecycle.Stack {
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
	return stack
}

func testMonitor() *telemetry.Monitor {
	return telemetry.New(telemetry.ReaderFunc(func(context.Context) (uint64, error) {
		return 0, nil
	}), 60*time.Second, 2*time.Second)
}

func TestGetStatusReportsDomains(t *testing.T) {
	stack := acquireAll(t)
	s := NewServer("127.0.0.1:0", Config{
		Device:  "mlx5_0",
		Backend: "sim",
		Stack:   stack,
		Monitor: testMonitor(),
	})

	resp, err := s.GetStatus(context.Background(), &pb.GetStatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if resp.Device != "mlx5_0" || resp.Backend != "sim" {
		t.Errorf("identity = %s/%s, want mlx5_0/sim", resp.Device, resp.Backend)
	}
	if resp.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %d, want 60", resp.WindowSeconds)
	}
	if !resp.Running {
		t.Error("Running = false with steering rules held")
	}
	if len(resp.Stages) != len(lifecycle.Domains()) {
		t.Fatalf("got %d stages, want %d", len(resp.Stages), len(lifecycle.Domains()))
	}
	for _, st := range resp.Stages {
		if !st.Acquired {
			t.Errorf("stage %s not reported acquired", st.Domain)
		}
	}

	// After release every domain reads as released and Running drops.
	stack.Release()
	resp, err = s.GetStatus(context.Background(), &pb.GetStatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus after release: %v", err)
	}
	if resp.Running {
		t.Error("Running = true after release")
	}
	for _, st := range resp.Stages {
		if st.Acquired {
			t.Errorf("stage %s still reported acquired", st.Domain)
		}
	}
}

func TestGetTelemetryEmptyBeforeFirstSample(t *testing.T) {
	s := NewServer("127.0.0.1:0", Config{Monitor: testMonitor()})

	resp, err := s.GetTelemetry(context.Background(), &pb.GetTelemetryRequest{})
	if err != nil {
		t.Fatalf("GetTelemetry: %v", err)
	}
	if resp.TotalPackets != 0 || resp.AveragePps != 0 {
		t.Errorf("non-zero telemetry before first sample: %+v", resp)
	}
}

func TestStopInvokesStopFn(t *testing.T) {
	stopped := false
	s := NewServer("127.0.0.1:0", Config{StopFn: func() { stopped = true }})

	if _, err := s.Stop(context.Background(), &pb.StopRequest{}); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !stopped {
		t.Error("StopFn not invoked")
	}
}

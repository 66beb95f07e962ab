// Package grpcapi implements the gRPC operational API for l2reflectd.
package grpcapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"

	pb "github.com/dpax/l2reflect/pkg/grpcapi/l2reflectv1"
	"github.com/dpax/l2reflect/pkg/lifecycle"
	"github.com/dpax/l2reflect/pkg/telemetry"
)

// Config configures the gRPC server.
type Config struct {
	Device  string
	Backend string
	Stack   *lifecycle.Stack
	Monitor *telemetry.Monitor
	// StopFn requests cooperative shutdown, same as a termination signal.
	StopFn func()
}

// Server implements the ReflectorService gRPC service over live daemon state.
type Server struct {
	pb.UnimplementedReflectorServiceServer
	cfg       Config
	addr      string
	startTime time.Time
}

// NewServer creates a new gRPC server.
func NewServer(addr string, cfg Config) *Server {
	return &Server{
		cfg:       cfg,
		addr:      addr,
		startTime: time.Now(),
	}
}

// Run starts the gRPC server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}

	srv := grpc.NewServer()
	pb.RegisterReflectorServiceServer(srv, s)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("gRPC server listening", "addr", s.addr)
		if err := srv.Serve(lis); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.GracefulStop()
	return nil
}

func (s *Server) GetStatus(_ context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	resp := &pb.GetStatusResponse{
		Uptime:  time.Since(s.startTime).Truncate(time.Second).String(),
		Device:  s.cfg.Device,
		Backend: s.cfg.Backend,
	}
	if s.cfg.Monitor != nil {
		resp.WindowSeconds = uint32(s.cfg.Monitor.Window() / time.Second)
	}
	if s.cfg.Stack != nil {
		for _, d := range lifecycle.Domains() {
			resp.Stages = append(resp.Stages, &pb.StageInfo{
				Domain:   d.String(),
				Acquired: s.cfg.Stack.Held(d),
			})
		}
		resp.Running = s.cfg.Stack.Held(lifecycle.SteeringRules)
	}
	return resp, nil
}

func (s *Server) GetTelemetry(_ context.Context, _ *pb.GetTelemetryRequest) (*pb.GetTelemetryResponse, error) {
	if s.cfg.Monitor == nil {
		return &pb.GetTelemetryResponse{}, nil
	}
	r := s.cfg.Monitor.Snapshot()
	return &pb.GetTelemetryResponse{
		TotalPackets:   r.Total,
		AveragePps:     r.Average,
		PerSecond:      r.PerSecond,
		ElapsedSeconds: r.Elapsed.Seconds(),
		Cancelled:      r.Cancelled,
	}, nil
}

func (s *Server) Stop(_ context.Context, _ *pb.StopRequest) (*pb.StopResponse, error) {
	slog.Info("shutdown requested over gRPC")
	if s.cfg.StopFn != nil {
		s.cfg.StopFn()
	}
	return &pb.StopResponse{}, nil
}

// Package api implements the HTTP observability surface for l2reflectd:
// health, prometheus metrics, and JSON status/telemetry endpoints.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dpax/l2reflect/pkg/lifecycle"
	"github.com/dpax/l2reflect/pkg/logging"
	"github.com/dpax/l2reflect/pkg/telemetry"
)

// Config configures the API server.
type Config struct {
	Addr    string
	Device  string
	Backend string
	Stack   *lifecycle.Stack
	Monitor *telemetry.Monitor
	Logs    *logging.Buffer
}

// Server is the HTTP API server.
type Server struct {
	httpServer *http.Server
	cfg        Config
	startTime  time.Time
}

// NewServer creates a new API server.
func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:       cfg,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)

	// Prometheus metrics with isolated registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(telemetry.NewCollector(cfg.Monitor))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /api/v1/status", s.statusHandler)
	mux.HandleFunc("GET /api/v1/telemetry", s.telemetryHandler)
	mux.HandleFunc("GET /api/v1/logs", s.logsHandler)

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
	return s
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

type stageStatus struct {
	Domain   string `json:"domain"`
	Acquired bool   `json:"acquired"`
}

type statusResponse struct {
	Uptime        string        `json:"uptime"`
	Device        string        `json:"device"`
	Backend       string        `json:"backend"`
	Running       bool          `json:"running"`
	WindowSeconds float64       `json:"window_seconds"`
	Stages        []stageStatus `json:"stages"`
}

func (s *Server) statusHandler(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Uptime:  time.Since(s.startTime).Truncate(time.Second).String(),
		Device:  s.cfg.Device,
		Backend: s.cfg.Backend,
		Stages:  []stageStatus{},
	}
	if s.cfg.Monitor != nil {
		resp.WindowSeconds = s.cfg.Monitor.Window().Seconds()
	}
	if s.cfg.Stack != nil {
		for _, d := range lifecycle.Domains() {
			resp.Stages = append(resp.Stages, stageStatus{
				Domain:   d.String(),
				Acquired: s.cfg.Stack.Held(d),
			})
		}
		resp.Running = s.cfg.Stack.Held(lifecycle.SteeringRules)
	}
	writeJSON(w, resp)
}

type telemetryResponse struct {
	TotalPackets   uint64   `json:"total_packets"`
	AveragePps     float64  `json:"average_pps"`
	PerSecond      []uint64 `json:"per_second"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	Cancelled      bool     `json:"cancelled"`
}

func (s *Server) telemetryHandler(w http.ResponseWriter, _ *http.Request) {
	var resp telemetryResponse
	resp.PerSecond = []uint64{}
	if s.cfg.Monitor != nil {
		r := s.cfg.Monitor.Snapshot()
		resp = telemetryResponse{
			TotalPackets:   r.Total,
			AveragePps:     r.Average,
			PerSecond:      r.PerSecond,
			ElapsedSeconds: r.Elapsed.Seconds(),
			Cancelled:      r.Cancelled,
		}
		if resp.PerSecond == nil {
			resp.PerSecond = []uint64{}
		}
	}
	writeJSON(w, resp)
}

func (s *Server) logsHandler(w http.ResponseWriter, r *http.Request) {
	n := 100
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = v
	}
	recs := []logging.Record{}
	if s.cfg.Logs != nil {
		if latest := s.cfg.Logs.Latest(n); latest != nil {
			recs = latest
		}
	}
	writeJSON(w, recs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("failed to encode response", "err", err)
	}
}

// Package daemon implements the l2reflectd lifecycle: staged resource
// acquisition, device program launch, the telemetry window, and teardown.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/dpax/l2reflect/pkg/api"
	"github.com/dpax/l2reflect/pkg/device"
	"github.com/dpax/l2reflect/pkg/grpcapi"
	"github.com/dpax/l2reflect/pkg/lifecycle"
	"github.com/dpax/l2reflect/pkg/logging"
	"github.com/dpax/l2reflect/pkg/telemetry"
	"github.com/dpax/l2reflect/pkg/xdp"
)

// Options configures the daemon.
type Options struct {
	Device         string
	Backend        string // "sim" or "xdp"
	ObjPath        string // reflector object path for the xdp backend
	QueueLogDepth  uint32
	DataRegionSize uint64
	Window         time.Duration
	Poll           time.Duration
	SimRate        uint64 // simulated packet rate for the sim backend
	APIAddr        string // HTTP API listen address (empty to disable)
	GRPCAddr       string // gRPC API listen address (empty to disable)

	// Logs is the recent-log ring served by the HTTP API; nil disables
	// the logs endpoint.
	Logs *logging.Buffer

	// Driver overrides Backend when set; used by tests.
	Driver device.Driver
}

// Daemon is the main l2reflectd daemon.
type Daemon struct {
	opts    Options
	driver  device.Driver
	stack   *lifecycle.Stack
	monitor *telemetry.Monitor
}

// New creates a new Daemon.
func New(opts Options) *Daemon {
	if opts.Backend == "" {
		opts.Backend = "sim"
	}
	if opts.QueueLogDepth == 0 {
		opts.QueueLogDepth = 7
	}
	if opts.DataRegionSize == 0 {
		opts.DataRegionSize = 1 << 16
	}
	if opts.Window <= 0 {
		opts.Window = telemetry.DefaultWindow
	}
	if opts.Poll <= 0 {
		opts.Poll = telemetry.DefaultPoll
	}
	return &Daemon{opts: opts, stack: lifecycle.NewStack()}
}

// Run brings the reflector up, observes it for the configured window, and
// tears everything down. It blocks until the window elapses, cancellation is
// requested, or a failure occurs. A nil return means a clean full run or a
// graceful cancellation after full acquisition.
func (d *Daemon) Run(ctx context.Context) error {
	slog.Info("starting l2reflectd",
		"device", d.opts.Device,
		"backend", d.opts.Backend,
		"window", d.opts.Window,
		"pid", os.Getpid())

	driver, err := d.buildDriver()
	if err != nil {
		return err
	}
	d.driver = driver

	// Interrupt and terminate requests cancel ctx; the cancellation is
	// cooperative and observed at every loop head and sleep wake.
	ctx, stop := signal.NotifyContext(ctx, unix.SIGINT, unix.SIGTERM)
	defer stop()

	// Whatever prefix of domains ends up acquired is released in reverse
	// order on every exit path.
	defer d.stack.Release()

	cfg := device.Config{
		DeviceID:       d.opts.Device,
		QueueLogDepth:  d.opts.QueueLogDepth,
		DataRegionSize: d.opts.DataRegionSize,
	}

	var h device.Handles
	mgr := lifecycle.NewManager(
		lifecycle.Stage{
			Domain: lifecycle.NetworkBinding,
			Acquire: func(ctx context.Context) (func() error, error) {
				dev, err := driver.OpenDevice(ctx, cfg)
				if err != nil {
					return nil, err
				}
				h.Device = dev
				return dev.Close, nil
			},
		},
		lifecycle.Stage{
			Domain: lifecycle.DeviceRuntime,
			Acquire: func(ctx context.Context) (func() error, error) {
				proc, err := driver.CreateProcess(ctx, h.Device)
				if err != nil {
					return nil, err
				}
				h.Process = proc
				return proc.Close, nil
			},
		},
		lifecycle.Stage{
			Domain: lifecycle.DeviceResources,
			Acquire: func(ctx context.Context) (func() error, error) {
				res, err := driver.AllocResources(ctx, h.Process, cfg)
				if err != nil {
					return nil, err
				}
				h.Resources = res
				return res.Close, nil
			},
		},
		lifecycle.Stage{
			Domain: lifecycle.SteeringRules,
			Acquire: func(ctx context.Context) (func() error, error) {
				steer, err := driver.InstallSteering(ctx, h.Resources)
				if err != nil {
					return nil, err
				}
				h.Steering = steer
				return steer.Close, nil
			},
		},
	)

	if err := mgr.Acquire(ctx, d.stack); err != nil {
		return err
	}

	if err := launch(ctx, h); err != nil {
		return fmt.Errorf("launch device program: %w", err)
	}

	d.monitor = telemetry.New(telemetry.ReaderFunc(func(ctx context.Context) (uint64, error) {
		return h.Process.Call(ctx, device.FuncProcessedPackets, 0)
	}), d.opts.Window, d.opts.Poll)

	// Observability servers run for the duration of the window.
	srvCtx, srvCancel := context.WithCancel(ctx)
	defer srvCancel()
	var wg sync.WaitGroup
	if d.opts.APIAddr != "" {
		srv := api.NewServer(api.Config{
			Addr:    d.opts.APIAddr,
			Device:  d.opts.Device,
			Backend: driver.Name(),
			Stack:   d.stack,
			Monitor: d.monitor,
			Logs:    d.opts.Logs,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Run(srvCtx); err != nil {
				slog.Error("HTTP API server failed", "err", err)
			}
		}()
	}
	if d.opts.GRPCAddr != "" {
		srv := grpcapi.NewServer(d.opts.GRPCAddr, grpcapi.Config{
			Device:  d.opts.Device,
			Backend: driver.Name(),
			Stack:   d.stack,
			Monitor: d.monitor,
			StopFn:  stop,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Run(srvCtx); err != nil {
				slog.Error("gRPC server failed", "err", err)
			}
		}()
	}

	slog.Info("l2 reflector started")
	slog.Info("press Ctrl+C to terminate")

	report, runErr := d.monitor.Run(ctx)
	logReport(report, d.opts.Window)

	srvCancel()
	wg.Wait()

	if runErr != nil {
		return runErr
	}
	if report.Cancelled {
		slog.Info("termination requested, shutting down")
	}
	return nil
}

func (d *Daemon) buildDriver() (device.Driver, error) {
	if d.opts.Driver != nil {
		return d.opts.Driver, nil
	}
	switch d.opts.Backend {
	case "sim":
		return device.NewSim(d.opts.SimRate), nil
	case "xdp":
		return xdp.NewDriver(d.opts.ObjPath), nil
	}
	return nil, fmt.Errorf("unknown backend %q (use 'sim' or 'xdp')", d.opts.Backend)
}

// launch initializes the device-resident program and starts its event loop.
// The init call carries the device data-region address; the event loop runs
// independently of host polling once started. A failure here unwinds the
// full acquired prefix, steering rules first.
func launch(ctx context.Context, h device.Handles) error {
	if _, err := h.Process.Call(ctx, device.FuncReflectorInit, h.Resources.DataRegionAddr()); err != nil {
		return err
	}
	if err := h.Resources.Start(ctx); err != nil {
		return err
	}
	slog.Info("device event loop running")
	return nil
}

// logReport emits the final throughput summary, one line per observed second.
func logReport(r telemetry.Report, window time.Duration) {
	slog.Info("observation complete",
		"window", window,
		"total_packets", r.Total,
		"avg_pps", fmt.Sprintf("%.2f", r.Average),
		"elapsed", r.Elapsed.Truncate(time.Millisecond))
	for sec, n := range r.PerSecond {
		slog.Info("packets per second", "second", sec, "packets", n)
	}
}

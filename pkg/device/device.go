// Package device defines the driver boundary between the host controller and
// the accelerator. Handles are opaque: the controller only acquires them in
// order, issues synchronous remote calls through them, and closes them in
// reverse order. The low-level accelerator bindings live behind the Driver
// interface; this package also provides the in-memory simulated backend.
package device

import (
	"context"
	"errors"
)

// Remote call entry points exposed by the device-resident reflector program.
const (
	// FuncReflectorInit initializes the device program; the argument is the
	// device-side data region address. Must succeed before steering traffic
	// into the device is meaningful.
	FuncReflectorInit = "reflector_init"
	// FuncProcessedPackets returns the cumulative number of packets the
	// device has processed. Idempotent and monotonically non-decreasing for
	// the process lifetime.
	FuncProcessedPackets = "processed_packets"
)

// ErrUnknownFunc is returned by Call for an entry point the device program
// does not export.
var ErrUnknownFunc = errors.New("device: unknown remote function")

// Config holds the immutable controller configuration for a device. It is
// populated before the first stage runs and read-only afterwards.
type Config struct {
	// DeviceID names the target network device (e.g. "mlx5_0" or an
	// interface name for the software backend).
	DeviceID string
	// QueueLogDepth is the log2 depth of the device work and completion
	// queues.
	QueueLogDepth uint32
	// DataRegionSize is the size in bytes of the shared device data region.
	DataRegionSize uint64
}

// Device is the bound network device and its protection domain (stage 1).
type Device interface {
	Close() error
}

// Process is the device-resident execution context (stage 2). Call issues a
// synchronous remote procedure call into the device program: it blocks until
// the device responds or the call fails. There are no retries; a failed call
// is terminal for the run.
type Process interface {
	Call(ctx context.Context, fn string, arg uint64) (uint64, error)
	Close() error
}

// Resources are the device work queues, completion queues and shared data
// region (stage 3). Start launches the device's own event-processing loop;
// once started the loop runs independently of host polling.
type Resources interface {
	DataRegionAddr() uint64
	Start(ctx context.Context) error
	Close() error
}

// Steering is the pair of installed RX and TX steering rules (stage 4).
type Steering interface {
	Close() error
}

// Driver creates the four resource domains in order. Each method depends on
// the handles produced by the previous one. A method that fails mid-way must
// roll its own partial side effects back before returning; the caller only
// releases handles that were returned successfully.
type Driver interface {
	Name() string
	OpenDevice(ctx context.Context, cfg Config) (Device, error)
	CreateProcess(ctx context.Context, dev Device) (Process, error)
	AllocResources(ctx context.Context, proc Process, cfg Config) (Resources, error)
	// InstallSteering installs the RX rule then the TX rule. If the TX rule
	// fails, the RX rule is removed before the error is returned.
	InstallSteering(ctx context.Context, res Resources) (Steering, error)
}

// Handles collects the acquired domain handles for the launcher and monitor.
type Handles struct {
	Device    Device
	Process   Process
	Resources Resources
	Steering  Steering
}

// Package xdp implements the software reflector backend: an eBPF program on
// the host NIC standing in for the DPU-resident reflector when no accelerator
// is present. The four resource domains map onto eBPF primitives — interface
// binding, loaded collection, control/counter maps, and XDP/TCX attachments —
// so the controller drives it through the same device.Driver seam as real
// hardware.
package xdp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/link"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/dpax/l2reflect/pkg/device"
)

// Object layout of the reflector program. The ELF is built out of tree
// (make bpf) and loaded from ObjPath at stage 2.
const (
	progRX   = "xdp_reflector"
	progTX   = "tc_reflector_egress"
	mapCtrl  = "reflector_ctrl"
	mapCount = "processed_packets"
)

// reflector_ctrl array keys.
const (
	ctrlKeyDataRegion = 0
	ctrlKeyQueueDepth = 1
	ctrlKeyEnabled    = 2
)

// DefaultObjPath is where the packaged reflector object is installed.
const DefaultObjPath = "/usr/lib/l2reflect/reflector.bpf.o"

// Driver loads and attaches the software reflector.
type Driver struct {
	objPath string
}

// NewDriver creates a Driver loading the reflector object from objPath
// (DefaultObjPath if empty).
func NewDriver(objPath string) *Driver {
	if objPath == "" {
		objPath = DefaultObjPath
	}
	return &Driver{objPath: objPath}
}

func (d *Driver) Name() string { return "xdp" }

// OpenDevice binds to the target interface and raises the memlock limit so
// map creation cannot fail on pre-5.11 kernels.
func (d *Driver) OpenDevice(_ context.Context, cfg device.Config) (device.Device, error) {
	lnk, err := netlink.LinkByName(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("lookup interface %s: %w", cfg.DeviceID, err)
	}

	limit := unix.Rlimit{Cur: unix.RLIM_INFINITY, Max: unix.RLIM_INFINITY}
	if err := unix.Setrlimit(unix.RLIMIT_MEMLOCK, &limit); err != nil {
		return nil, fmt.Errorf("raise memlock limit: %w", err)
	}

	slog.Info("bound network device", "iface", cfg.DeviceID, "ifindex", lnk.Attrs().Index)
	return &netDevice{ifindex: lnk.Attrs().Index, name: cfg.DeviceID}, nil
}

// CreateProcess loads the reflector collection; the loaded programs are this
// backend's "device-resident execution context".
func (d *Driver) CreateProcess(_ context.Context, dev device.Device) (device.Process, error) {
	nd, ok := dev.(*netDevice)
	if !ok {
		return nil, fmt.Errorf("device handle %T is not an xdp handle", dev)
	}

	spec, err := ebpf.LoadCollectionSpec(d.objPath)
	if err != nil {
		return nil, fmt.Errorf("load reflector object %s: %w", d.objPath, err)
	}
	coll, err := ebpf.NewCollection(spec)
	if err != nil {
		return nil, fmt.Errorf("create reflector collection: %w", err)
	}

	slog.Info("reflector programs loaded", "obj", d.objPath)
	return &program{coll: coll, ifindex: nd.ifindex}, nil
}

// AllocResources resolves the control and counter maps, the backend's
// equivalent of the device queues and shared data region.
func (d *Driver) AllocResources(_ context.Context, proc device.Process, cfg device.Config) (device.Resources, error) {
	p, ok := proc.(*program)
	if !ok {
		return nil, fmt.Errorf("process handle %T is not an xdp handle", proc)
	}

	ctrl := p.coll.Maps[mapCtrl]
	if ctrl == nil {
		return nil, fmt.Errorf("reflector object missing map %q", mapCtrl)
	}
	counter := p.coll.Maps[mapCount]
	if counter == nil {
		return nil, fmt.Errorf("reflector object missing map %q", mapCount)
	}
	if err := ctrl.Update(uint32(ctrlKeyQueueDepth), uint64(cfg.QueueLogDepth), ebpf.UpdateAny); err != nil {
		return nil, fmt.Errorf("write queue depth: %w", err)
	}

	p.ctrl = ctrl
	p.counter = counter
	return &resources{prog: p, addr: uint64(ctrl.FD())}, nil
}

// InstallSteering attaches the RX program (XDP) then the TX program (TCX
// egress). If the TX attach fails the RX attachment is removed before the
// stage reports failure, so no partial rule set survives.
func (d *Driver) InstallSteering(_ context.Context, res device.Resources) (device.Steering, error) {
	r, ok := res.(*resources)
	if !ok {
		return nil, fmt.Errorf("resources handle %T is not an xdp handle", res)
	}

	rxProg := r.prog.coll.Programs[progRX]
	if rxProg == nil {
		return nil, fmt.Errorf("reflector object missing program %q", progRX)
	}
	txProg := r.prog.coll.Programs[progTX]
	if txProg == nil {
		return nil, fmt.Errorf("reflector object missing program %q", progTX)
	}

	rx, err := link.AttachXDP(link.XDPOptions{
		Program:   rxProg,
		Interface: r.prog.ifindex,
	})
	if err != nil {
		return nil, fmt.Errorf("install rx rule: %w", err)
	}

	tx, err := link.AttachTCX(link.TCXOptions{
		Program:   txProg,
		Attach:    ebpf.AttachTCXEgress,
		Interface: r.prog.ifindex,
	})
	if err != nil {
		if cerr := rx.Close(); cerr != nil {
			slog.Error("failed to roll back rx rule", "err", cerr)
		}
		return nil, fmt.Errorf("install tx rule: %w", err)
	}

	slog.Info("steering rules installed", "ifindex", r.prog.ifindex)
	return &steering{rx: rx, tx: tx}, nil
}

type netDevice struct {
	ifindex int
	name    string
}

func (d *netDevice) Close() error {
	slog.Info("released network device", "iface", d.name)
	return nil
}

// program is the loaded reflector collection. Remote calls become map
// operations: init writes the data region record, the counter read sums the
// per-CPU counter.
type program struct {
	coll    *ebpf.Collection
	ifindex int
	ctrl    *ebpf.Map
	counter *ebpf.Map
}

func (p *program) Call(_ context.Context, fn string, arg uint64) (uint64, error) {
	switch fn {
	case device.FuncReflectorInit:
		if p.ctrl == nil {
			return 0, fmt.Errorf("call %s: resources not allocated", fn)
		}
		if err := p.ctrl.Update(uint32(ctrlKeyDataRegion), arg, ebpf.UpdateAny); err != nil {
			return 0, fmt.Errorf("call %s: %w", fn, err)
		}
		return 0, nil
	case device.FuncProcessedPackets:
		if p.counter == nil {
			return 0, fmt.Errorf("call %s: resources not allocated", fn)
		}
		var perCPU []uint64
		if err := p.counter.Lookup(uint32(0), &perCPU); err != nil {
			return 0, fmt.Errorf("call %s: %w", fn, err)
		}
		return sumPerCPU(perCPU), nil
	}
	return 0, fmt.Errorf("call %s: %w", fn, device.ErrUnknownFunc)
}

func (p *program) Close() error {
	p.coll.Close()
	slog.Info("reflector programs unloaded")
	return nil
}

type resources struct {
	prog *program
	addr uint64
}

func (r *resources) DataRegionAddr() uint64 { return r.addr }

// Start enables reflection. The attached programs check the enabled flag on
// every packet, so this is the backend's event-loop start.
func (r *resources) Start(_ context.Context) error {
	if err := r.prog.ctrl.Update(uint32(ctrlKeyEnabled), uint64(1), ebpf.UpdateAny); err != nil {
		return fmt.Errorf("enable reflector: %w", err)
	}
	return nil
}

func (r *resources) Close() error {
	if err := r.prog.ctrl.Update(uint32(ctrlKeyEnabled), uint64(0), ebpf.UpdateAny); err != nil {
		return fmt.Errorf("disable reflector: %w", err)
	}
	return nil
}

type steering struct {
	rx link.Link
	tx link.Link
}

// Close removes the TX rule then the RX rule, the reverse of installation.
// Both removals are attempted even if the first fails.
func (s *steering) Close() error {
	var firstErr error
	if err := s.tx.Close(); err != nil {
		firstErr = fmt.Errorf("remove tx rule: %w", err)
	}
	if err := s.rx.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("remove rx rule: %w", err)
	}
	return firstErr
}

func sumPerCPU(vals []uint64) uint64 {
	var total uint64
	for _, v := range vals {
		total += v
	}
	return total
}

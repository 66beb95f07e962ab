// l2reflectd is the host-side controller for the offloaded L2 reflector.
//
// It binds the network device, provisions the device-resident reflector
// program, observes its packet counter for a fixed window, and tears
// everything down in reverse order of acquisition.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dpax/l2reflect/pkg/daemon"
	"github.com/dpax/l2reflect/pkg/logging"
	"github.com/dpax/l2reflect/pkg/telemetry"
	"github.com/dpax/l2reflect/pkg/xdp"
)

func main() {
	device := flag.String("device", "", "network device to bind (IB device name or interface)")
	backend := flag.String("backend", "sim", "device backend: 'sim' or 'xdp'")
	objPath := flag.String("obj", xdp.DefaultObjPath, "reflector BPF object path (xdp backend)")
	window := flag.Duration("window", telemetry.DefaultWindow, "observation window duration")
	poll := flag.Duration("poll", telemetry.DefaultPoll, "counter poll interval")
	queueDepth := flag.Uint("queue-depth", 7, "log2 depth of the device work/completion queues")
	dataRegion := flag.Uint64("data-region", 1<<16, "device data region size in bytes")
	simRate := flag.Uint64("sim-rate", 1000, "simulated packets per second (sim backend)")
	apiAddr := flag.String("api-addr", "127.0.0.1:8080", "HTTP API listen address (empty to disable)")
	grpcAddr := flag.String("grpc-addr", "127.0.0.1:50051", "gRPC API listen address (empty to disable)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Set up structured logging; recent records are kept in memory for the
	// HTTP API's logs endpoint.
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logBuf := logging.NewBuffer(512)
	slog.SetDefault(slog.New(logging.NewBufferHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}),
		logBuf,
	)))

	if *device == "" && *backend == "xdp" {
		fmt.Fprintln(os.Stderr, "l2reflectd: -device is required with the xdp backend")
		os.Exit(1)
	}
	if *window <= 0 || *poll <= 0 {
		fmt.Fprintln(os.Stderr, "l2reflectd: -window and -poll must be positive")
		os.Exit(1)
	}
	if *poll > *window {
		slog.Warn("poll interval exceeds window, counter will be read once",
			"poll", *poll, "window", *window)
	}

	d := daemon.New(daemon.Options{
		Device:         *device,
		Backend:        *backend,
		ObjPath:        *objPath,
		QueueLogDepth:  uint32(*queueDepth),
		DataRegionSize: *dataRegion,
		Window:         *window,
		Poll:           *poll,
		SimRate:        *simRate,
		APIAddr:        *apiAddr,
		GRPCAddr:       *grpcAddr,
		Logs:           logBuf,
	})

	if err := d.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "l2reflectd: %v\n", err)
		os.Exit(1)
	}
}

// l2rctl is the remote CLI client for l2reflectd.
//
// It connects to the l2reflectd gRPC API. With a subcommand it runs one
// request and exits; without arguments it starts an interactive shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dpax/l2reflect/pkg/grpcapi/l2reflectv1"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "l2reflectd gRPC address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "l2rctl: connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewReflectorServiceClient(conn)

	// Verify connectivity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	resp, err := client.GetStatus(ctx, &pb.GetStatusRequest{})
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "l2rctl: cannot reach l2reflectd at %s: %v\n", *addr, err)
		os.Exit(1)
	}

	c := &ctl{client: client}

	if flag.NArg() > 0 {
		if err := c.dispatch(strings.Join(flag.Args(), " ")); err != nil {
			if err != errExit {
				fmt.Fprintf(os.Stderr, "l2rctl: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "l2rctl> ",
		HistoryFile:     "/tmp/l2rctl_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("status"),
			readline.PcItem("telemetry"),
			readline.PcItem("watch"),
			readline.PcItem("stop"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "l2rctl: readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("l2rctl — connected to l2reflectd (uptime: %s)\n", resp.Uptime)
	fmt.Println("Type 'help' for commands")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := c.dispatch(line); err != nil {
			if err == errExit {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

var errExit = fmt.Errorf("exit")

type ctl struct {
	client pb.ReflectorServiceClient
}

func (c *ctl) dispatch(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "status":
		return c.showStatus()

	case "telemetry":
		return c.showTelemetry()

	case "watch":
		return c.watch()

	case "stop":
		_, err := c.client.Stop(context.Background(), &pb.StopRequest{})
		if err != nil {
			return fmt.Errorf("%v", err)
		}
		fmt.Println("shutdown requested")
		return nil

	case "quit", "exit":
		return errExit

	case "?", "help":
		fmt.Println("Commands:")
		fmt.Println("  status     show resource domain state")
		fmt.Println("  telemetry  show the observation window report")
		fmt.Println("  watch      poll telemetry once per second until interrupted")
		fmt.Println("  stop       request daemon shutdown")
		fmt.Println("  exit       leave the shell")
		return nil

	default:
		return fmt.Errorf("unknown command: %s", parts[0])
	}
}

func (c *ctl) showStatus() error {
	resp, err := c.client.GetStatus(context.Background(), &pb.GetStatusRequest{})
	if err != nil {
		return fmt.Errorf("%v", err)
	}

	fmt.Printf("Device:   %s (backend %s)\n", resp.Device, resp.Backend)
	fmt.Printf("Uptime:   %s\n", resp.Uptime)
	fmt.Printf("Window:   %ds\n", resp.WindowSeconds)
	fmt.Printf("Running:  %v\n", resp.Running)
	fmt.Println("Resource domains:")
	for _, st := range resp.Stages {
		state := "released"
		if st.Acquired {
			state = "acquired"
		}
		fmt.Printf("  %-18s %s\n", st.Domain, state)
	}
	return nil
}

func (c *ctl) showTelemetry() error {
	resp, err := c.client.GetTelemetry(context.Background(), &pb.GetTelemetryRequest{})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	printTelemetry(resp)
	return nil
}

// watch polls telemetry once per second until the daemon becomes
// unreachable or the report is final.
func (c *ctl) watch() error {
	for {
		resp, err := c.client.GetTelemetry(context.Background(), &pb.GetTelemetryRequest{})
		if err != nil {
			return fmt.Errorf("%v", err)
		}
		fmt.Printf("total=%d avg=%.2f pps elapsed=%.1fs\n",
			resp.TotalPackets, resp.AveragePps, resp.ElapsedSeconds)
		if resp.Cancelled {
			fmt.Println("daemon cancelled, final report above")
			return nil
		}
		time.Sleep(time.Second)
	}
}

func printTelemetry(resp *pb.GetTelemetryResponse) {
	fmt.Printf("Total packets:   %d\n", resp.TotalPackets)
	fmt.Printf("Average:         %.2f pps\n", resp.AveragePps)
	fmt.Printf("Elapsed:         %.1fs\n", resp.ElapsedSeconds)
	if resp.Cancelled {
		fmt.Println("Observation was cancelled before the window elapsed")
	}
	for sec, n := range resp.PerSecond {
		fmt.Printf("  second %2d: %d packets\n", sec, n)
	}
}

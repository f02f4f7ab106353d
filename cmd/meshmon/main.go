// Command meshmon is a live terminal dashboard over a meshsim.Simulator: a
// handful of nodes on a shared in-memory Medium, traffic generated on every
// tick, and a routing table rendered with bubbletea. Logging goes to a file
// rather than stdout so it doesn't tear through the alt-screen.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rf24go/rf24mesh"
	"github.com/rf24go/rf24mesh/meshsim"
)

func newSimulator(addrs []rf24mesh.Address, channel uint8) (*meshsim.Simulator, error) {
	return meshsim.New(addrs, channel, rf24mesh.WithTxTimeout(5*time.Millisecond))
}

func main() {
	channel := flag.Uint("channel", 90, "radio channel shared by all simulated nodes")
	refresh := flag.Duration("refresh", 500*time.Millisecond, "dashboard refresh interval")
	logPath := flag.String("log", "meshmon.log", "path to write debug logs (kept off stdout)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshmon: failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	addrs := []rf24mesh.Address{
		rf24mesh.RootAddress,
		0o1,
		0o2,
		0o11,
		0o12,
	}

	sim, err := newSimulator(addrs, uint8(*channel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshmon: failed to build simulation: %v\n", err)
		os.Exit(1)
	}

	m := newModel(sim, logger, *refresh)

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "meshmon: %v\n", err)
		os.Exit(1)
	}
}

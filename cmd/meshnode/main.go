// Command meshnode runs a small in-memory mesh simulation described by a
// config.json, demonstrating Node Runtime wiring against radio.Loopback.
// Wiring a real nRF24L01+ driver instead only requires supplying a
// rf24mesh.Radio implementation for it; everything else is unchanged.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rf24go/rf24mesh"
	"github.com/rf24go/rf24mesh/meshnode"
	"github.com/rf24go/rf24mesh/radio"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the mesh config.json")
	flag.Parse()

	configs, err := meshnode.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	medium := radio.NewMedium()

	var nodes []*meshnode.Node
	for _, cfg := range configs {
		cfg := cfg
		logger := log.New(os.Stdout, "["+cfg.Name+"] ", log.LstdFlags)

		node, err := meshnode.NewNode(radio.NewLoopback(medium), cfg, func(header rf24mesh.Header, payload []byte) {
			logger.Printf("recv %s payload=%q", header, payload)
		}, logger)
		if err != nil {
			log.Fatalf("failed to create node %q: %v", cfg.Name, err)
		}

		if err := node.Start(); err != nil {
			log.Fatalf("failed to start node %q: %v", cfg.Name, err)
		}
		nodes = append(nodes, node)
	}

	log.Printf("mesh simulation running with %d node(s); press Ctrl+C to stop", len(nodes))

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	<-osSignals

	for _, node := range nodes {
		node.Stop()
	}
}

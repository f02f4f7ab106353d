// Package meshnode wires a rf24mesh.Network to a logger, a receive
// callback and a poll loop, the way the teacher's driver package wires
// NdisApi to a filter loop.
package meshnode

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rf24go/rf24mesh"
)

// NodeConfig is the on-disk shape of one mesh node's setup, decoded from a
// config.json the same way the teacher's proxifyre example decodes its own
// config.json: a plain anonymous struct, no external config library.
type NodeConfig struct {
	Name           string `json:"name"`
	Channel        uint8  `json:"channel"`
	Address        string `json:"address"`
	MulticastLevel *int   `json:"multicastLevel,omitempty"`
	MulticastRelay bool   `json:"multicastRelay,omitempty"`
}

// LoadConfig reads a config.json describing the mesh's nodes.
func LoadConfig(path string) ([]NodeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshnode: open config: %w", err)
	}
	defer f.Close()

	var settings struct {
		Nodes []NodeConfig `json:"nodes"`
	}
	if err := json.NewDecoder(f).Decode(&settings); err != nil {
		return nil, fmt.Errorf("meshnode: decode config: %w", err)
	}
	return settings.Nodes, nil
}

// ParseAddress accepts either a decimal string or an octal literal
// ("0o11" or "011") for the node's logical address.
func (c NodeConfig) ParseAddress() (rf24mesh.Address, error) {
	s := strings.TrimSpace(c.Address)
	base := 10
	switch {
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		base = 8
		s = s[2:]
	case strings.HasPrefix(s, "0") && len(s) > 1:
		base = 8
		s = s[1:]
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("meshnode: invalid address %q: %w", c.Address, err)
	}
	return rf24mesh.Address(v), nil
}

// Package wgconf loads wg-quick style tunnel configurations.
package wgconf

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	SectionInterface = "Interface"
	SectionPeer      = "Peer"
)

// Peer is one [Peer] section. ID is its PublicKey, or peer<N> by position
// when the section has none.
type Peer struct {
	ID    string
	Attrs map[string]string
}

// TunnelConfig is a loaded tunnel config. Peers keep file order.
type TunnelConfig struct {
	Interface map[string]string
	Peers     []Peer
}

var loadOptions = ini.LoadOptions{
	AllowNonUniqueSections: true,
	AllowShadows:           true,
	KeyValueDelimiters:     "=",
}

// listKeys may be repeated; their values accumulate into one
// comma-separated list. Any other repeated key keeps its last value.
var listKeys = map[string]bool{
	"Address":    true,
	"DNS":        true,
	"AllowedIPs": true,
}

// Load reads a tunnel config from path.
func Load(path string) (*TunnelConfig, error) {
	cfg, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fromFile(cfg), nil
}

// Parse reads a tunnel config from its text.
func Parse(data []byte) (*TunnelConfig, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return fromFile(cfg), nil
}

func fromFile(cfg *ini.File) *TunnelConfig {
	c := &TunnelConfig{Interface: map[string]string{}}
	if secI, err := cfg.GetSection(SectionInterface); err == nil {
		c.Interface = sectionMap(secI)
	}

	// SectionsByName only fails when there is no such section.
	secPs, _ := cfg.SectionsByName(SectionPeer)
	for i, secP := range secPs {
		attrs := sectionMap(secP)
		id := attrs["PublicKey"]
		if id == "" {
			id = fmt.Sprintf("peer%d", i+1)
		}
		c.Peers = append(c.Peers, Peer{ID: id, Attrs: attrs})
	}
	return c
}

func sectionMap(sec *ini.Section) map[string]string {
	m := make(map[string]string, len(sec.Keys()))
	for _, k := range sec.Keys() {
		vals := k.ValueWithShadows()
		for i := range vals {
			vals[i] = strings.TrimSpace(vals[i])
		}
		if listKeys[k.Name()] {
			m[k.Name()] = strings.Join(vals, ", ")
		} else {
			m[k.Name()] = vals[len(vals)-1]
		}
	}
	return m
}

// FirstPeer returns the first-declared peer.
func (c *TunnelConfig) FirstPeer() (*Peer, bool) {
	if len(c.Peers) == 0 {
		return nil, false
	}
	return &c.Peers[0], true
}

// Peer looks a peer up by ID.
func (c *TunnelConfig) Peer(id string) (*Peer, bool) {
	for i := range c.Peers {
		if c.Peers[i].ID == id {
			return &c.Peers[i], true
		}
	}
	return nil, false
}

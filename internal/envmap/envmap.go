// Package envmap derives the wghttp proxy environment from a tunnel config.
package envmap

import (
	"net/netip"
	"sort"
	"strconv"
	"strings"

	"wgstart/internal/errors"
	"wgstart/internal/logging"
	"wgstart/internal/wgconf"
)

// Variable names read by the proxy.
const (
	KeyDNS          = "DNS"
	KeyListen       = "LISTEN"
	KeyExitMode     = "EXIT_MODE"
	KeyPrivateKey   = "PRIVATE_KEY"
	KeyClientIP     = "CLIENT_IP"
	KeyPeerKey      = "PEER_KEY"
	KeyPeerEndpoint = "PEER_ENDPOINT"
)

// Keys lists every variable in the order scripts export them.
var Keys = []string{
	KeyDNS,
	KeyListen,
	KeyExitMode,
	KeyPrivateKey,
	KeyClientIP,
	KeyPeerKey,
	KeyPeerEndpoint,
}

const (
	DefaultDNS      = "8.8.8.8"
	DefaultExitMode = "remote"
	listenHost      = "localhost"
)

// Env maps variable names to values.
type Env map[string]string

// Derive builds the proxy environment for cfg, listening on listenPort.
func Derive(cfg *wgconf.TunnelConfig, listenPort int) (Env, error) {
	privateKey, err := required(cfg.Interface, wgconf.SectionInterface, "PrivateKey")
	if err != nil {
		return nil, err
	}
	address, err := required(cfg.Interface, wgconf.SectionInterface, "Address")
	if err != nil {
		return nil, err
	}
	clientIP, err := NetworkAddress(address)
	if err != nil {
		return nil, err
	}

	peer, ok := cfg.FirstPeer()
	if !ok {
		return nil, errors.NoPeers()
	}
	peerKey, err := required(peer.Attrs, wgconf.SectionPeer, "PublicKey")
	if err != nil {
		return nil, err
	}
	peerEndpoint, err := required(peer.Attrs, wgconf.SectionPeer, "Endpoint")
	if err != nil {
		return nil, err
	}
	logging.Debug("selected peer", "id", peer.ID, "endpoint", peerEndpoint, "peers", len(cfg.Peers))

	return Env{
		KeyDNS:          DefaultDNS,
		KeyListen:       listenHost + ":" + strconv.Itoa(listenPort),
		KeyExitMode:     DefaultExitMode,
		KeyPrivateKey:   privateKey,
		KeyClientIP:     clientIP,
		KeyPeerKey:      peerKey,
		KeyPeerEndpoint: peerEndpoint,
	}, nil
}

func required(attrs map[string]string, section, key string) (string, error) {
	v := attrs[key]
	if v == "" {
		return "", errors.MissingField(section, key)
	}
	return v, nil
}

// NetworkAddress returns the network address of each comma-separated CIDR in
// address, host bits zeroed. A bare address is a single-host network.
func NetworkAddress(address string) (string, error) {
	parts := strings.Split(address, ",")
	nets := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		prefix, err := parsePrefix(part)
		if err != nil {
			return "", errors.InvalidAddress(address, err)
		}
		nets = append(nets, prefix.Masked().Addr().String())
	}
	return strings.Join(nets, ","), nil
}

func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		return netip.ParsePrefix(s)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// Environ returns env as NAME=VALUE pairs in Keys order, followed by any
// other entries sorted by name.
func (e Env) Environ() []string {
	out := make([]string, 0, len(e))
	for _, k := range e.Names() {
		out = append(out, k+"="+e[k])
	}
	return out
}

// Names returns the variable names in export order.
func (e Env) Names() []string {
	names := make([]string, 0, len(e))
	seen := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		if _, ok := e[k]; ok {
			names = append(names, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range e {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Merge overlays env on base, a list of NAME=VALUE pairs such as os.Environ().
// Entries of base whose name env sets are dropped; the rest keep their order.
func (e Env) Merge(base []string) []string {
	out := make([]string, 0, len(base)+len(e))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := e[name]; ok {
			continue
		}
		out = append(out, kv)
	}
	return append(out, e.Environ()...)
}

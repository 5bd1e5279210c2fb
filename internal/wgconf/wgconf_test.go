package wgconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testPrivateKey   = "WG8jSCtXPbZ2nhL1+YBQRWE9jM3d/zj/BZu6xwEQqWs="
	testPublicKey    = "xTIBA5rboUvnH4htodjb60Y7YAf21J7YQMlNGC8HQ14="
	testPresharedKey = "FpCyhws9cxwWoV4xELtfJvjJN+zQVRi32YulM0ieCGQ="
)

const fullConfig = `# office tunnel
[Interface]
PrivateKey = WG8jSCtXPbZ2nhL1+YBQRWE9jM3d/zj/BZu6xwEQqWs=
Address = 10.0.0.2/24
DNS = 1.1.1.1
MTU = 1400

[Peer]
PublicKey = xTIBA5rboUvnH4htodjb60Y7YAf21J7YQMlNGC8HQ14=
Endpoint = vpn.example.com:51820
AllowedIPs = 0.0.0.0/0, ::/0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wg0.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Interface["PrivateKey"]; got != testPrivateKey {
		t.Errorf("PrivateKey = %q, want %q", got, testPrivateKey)
	}
	if got := cfg.Interface["Address"]; got != "10.0.0.2/24" {
		t.Errorf("Address = %q, want %q", got, "10.0.0.2/24")
	}
	if got := cfg.Interface["MTU"]; got != "1400" {
		t.Errorf("MTU = %q, want %q", got, "1400")
	}

	if len(cfg.Peers) != 1 {
		t.Fatalf("len(Peers) = %d, want 1", len(cfg.Peers))
	}
	p := cfg.Peers[0]
	if p.ID != testPublicKey {
		t.Errorf("peer ID = %q, want %q", p.ID, testPublicKey)
	}
	if got := p.Attrs["Endpoint"]; got != "vpn.example.com:51820" {
		t.Errorf("Endpoint = %q, want %q", got, "vpn.example.com:51820")
	}
	if got := p.Attrs["AllowedIPs"]; got != "0.0.0.0/0, ::/0" {
		t.Errorf("AllowedIPs = %q", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.conf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_PeersKeepFileOrder(t *testing.T) {
	cfg, err := Parse([]byte(`[Interface]
PrivateKey = ` + testPrivateKey + `
Address = 10.0.0.2/32

[Peer]
PublicKey = first
Endpoint = a.example.com:1

[Peer]
PublicKey = second
Endpoint = b.example.com:2

[Peer]
Endpoint = c.example.com:3
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantIDs := []string{"first", "second", "peer3"}
	if len(cfg.Peers) != len(wantIDs) {
		t.Fatalf("len(Peers) = %d, want %d", len(cfg.Peers), len(wantIDs))
	}
	for i, want := range wantIDs {
		if cfg.Peers[i].ID != want {
			t.Errorf("Peers[%d].ID = %q, want %q", i, cfg.Peers[i].ID, want)
		}
	}

	first, ok := cfg.FirstPeer()
	if !ok || first.ID != "first" {
		t.Errorf("FirstPeer() = %v, %v; want first", first, ok)
	}

	second, ok := cfg.Peer("second")
	if !ok || second.Attrs["Endpoint"] != "b.example.com:2" {
		t.Errorf("Peer(second) = %v, %v", second, ok)
	}
	if _, ok := cfg.Peer("missing"); ok {
		t.Error("Peer(missing) should not be found")
	}
}

func TestParse_NoSections(t *testing.T) {
	cfg, err := Parse([]byte("# empty\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Interface) != 0 {
		t.Errorf("Interface = %v, want empty", cfg.Interface)
	}
	if _, ok := cfg.FirstPeer(); ok {
		t.Error("FirstPeer() should report no peers")
	}
}

func TestParse_IPv6Endpoint(t *testing.T) {
	cfg, err := Parse([]byte("[Interface]\nAddress = fd00::2/64\n\n[Peer]\nPublicKey = k\nEndpoint = [2001:db8::1]:51820\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := cfg.Peers[0].Attrs["Endpoint"]; got != "[2001:db8::1]:51820" {
		t.Errorf("Endpoint = %q", got)
	}
}

func TestParse_RepeatedKeys(t *testing.T) {
	cfg, err := Parse([]byte(`[Interface]
PrivateKey = stale
PrivateKey = ` + testPrivateKey + `
Address = 10.0.0.2/24
Address = fd00::2/64
DNS = 1.1.1.1

[Peer]
PublicKey = ` + testPublicKey + `
Endpoint = vpn.example.com:51820
AllowedIPs = 0.0.0.0/0
AllowedIPs = ::/0
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name  string
		attrs map[string]string
		key   string
		want  string
	}{
		{"repeated Address accumulates", cfg.Interface, "Address", "10.0.0.2/24, fd00::2/64"},
		{"single DNS unchanged", cfg.Interface, "DNS", "1.1.1.1"},
		{"repeated scalar keeps last", cfg.Interface, "PrivateKey", testPrivateKey},
		{"repeated AllowedIPs accumulates", cfg.Peers[0].Attrs, "AllowedIPs", "0.0.0.0/0, ::/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attrs[tt.key]; got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLint_Clean(t *testing.T) {
	cfg, err := Parse([]byte(fullConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if findings := cfg.Lint(); len(findings) != 0 {
		t.Errorf("Lint() = %v, want no findings", findings)
	}
}

func TestLint_Findings(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *TunnelConfig
		wantField string
		wantText  string
	}{
		{
			name: "private key not base64",
			cfg: &TunnelConfig{
				Interface: map[string]string{"PrivateKey": "not base64!"},
			},
			wantField: "PrivateKey",
			wantText:  "base64",
		},
		{
			name: "private key too short",
			cfg: &TunnelConfig{
				Interface: map[string]string{"PrivateKey": "QUJD"},
			},
			wantField: "PrivateKey",
			wantText:  "32 bytes",
		},
		{
			name: "public key too short",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "QUJD", Attrs: map[string]string{"PublicKey": "QUJD"}}},
			},
			wantField: "PublicKey",
			wantText:  "32 bytes",
		},
		{
			name: "endpoint without port",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "p", Attrs: map[string]string{"Endpoint": "vpn.example.com"}}},
			},
			wantField: "Endpoint",
			wantText:  "invalid endpoint",
		},
		{
			name: "endpoint port zero",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "p", Attrs: map[string]string{"Endpoint": "vpn.example.com:0"}}},
			},
			wantField: "Endpoint",
			wantText:  "bad port",
		},
		{
			name: "preshared key not forwarded",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "p", Attrs: map[string]string{"PresharedKey": testPresharedKey}}},
			},
			wantField: "PresharedKey",
			wantText:  "not forwarded",
		},
		{
			name: "keepalive not forwarded",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "p", Attrs: map[string]string{"PersistentKeepalive": "25"}}},
			},
			wantField: "PersistentKeepalive",
			wantText:  "not forwarded",
		},
		{
			name: "several peers",
			cfg: &TunnelConfig{
				Interface: map[string]string{},
				Peers:     []Peer{{ID: "a", Attrs: map[string]string{}}, {ID: "b", Attrs: map[string]string{}}},
			},
			wantField: "*",
			wantText:  "only the first (a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := tt.cfg.Lint()
			for _, f := range findings {
				if f.Field == tt.wantField && strings.Contains(f.Problem, tt.wantText) {
					return
				}
			}
			t.Errorf("Lint() = %v, want a %s finding containing %q", findings, tt.wantField, tt.wantText)
		})
	}
}

func TestFinding_String(t *testing.T) {
	f := Finding{Section: "Peer#1", Field: "Endpoint", Problem: "bad"}
	if got := f.String(); got != "[Peer#1].Endpoint: bad" {
		t.Errorf("String() = %q", got)
	}
}

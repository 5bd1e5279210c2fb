package wgconf

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"

	"golang.zx2c4.com/wireguard/device"
)

// Finding is a problem the proxy would trip over at startup, or a setting it
// will not see.
type Finding struct {
	Section string
	Field   string
	Problem string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s].%s: %s", f.Section, f.Field, f.Problem)
}

// Lint checks key material and the endpoint the way the proxy decodes them.
// Absent required fields are not reported here.
func (c *TunnelConfig) Lint() []Finding {
	var findings []Finding
	add := func(section, field, problem string) {
		findings = append(findings, Finding{Section: section, Field: field, Problem: problem})
	}

	if v, ok := c.Interface["PrivateKey"]; ok && v != "" {
		var sk device.NoisePrivateKey
		if err := checkKey(v, sk.FromHex); err != nil {
			add(SectionInterface, "PrivateKey", err.Error())
		}
	}

	if len(c.Peers) > 1 {
		add(SectionPeer, "*", fmt.Sprintf("%d peers declared, only the first (%s) is used", len(c.Peers), c.Peers[0].ID))
	}

	for i, p := range c.Peers {
		section := fmt.Sprintf("%s#%d", SectionPeer, i+1)
		if v, ok := p.Attrs["PublicKey"]; ok && v != "" {
			var pk device.NoisePublicKey
			if err := checkKey(v, pk.FromHex); err != nil {
				add(section, "PublicKey", err.Error())
			}
		}
		if v, ok := p.Attrs["PresharedKey"]; ok && v != "" {
			var psk device.NoisePresharedKey
			if err := checkKey(v, psk.FromHex); err != nil {
				add(section, "PresharedKey", err.Error())
			}
			add(section, "PresharedKey", "not forwarded to the proxy")
		}
		if _, ok := p.Attrs["PersistentKeepalive"]; ok {
			add(section, "PersistentKeepalive", "not forwarded to the proxy")
		}
		if v, ok := p.Attrs["Endpoint"]; ok && v != "" {
			if err := checkEndpoint(v); err != nil {
				add(section, "Endpoint", err.Error())
			}
		}
	}
	return findings
}

func checkKey(b64 string, fromHex func(string) error) error {
	h, err := base64ToHex(b64)
	if err != nil {
		return err
	}
	if err := fromHex(h); err != nil {
		return fmt.Errorf("key must be 32 bytes: %w", err)
	}
	return nil
}

func base64ToHex(input string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("base64 decode failed: %w", err)
	}
	return hex.EncodeToString(decoded), nil
}

func checkEndpoint(ep string) error {
	host, port, err := net.SplitHostPort(ep)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", ep, err)
	}
	if host == "" {
		return fmt.Errorf("invalid endpoint %q: empty host", ep)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil || p == 0 {
		return fmt.Errorf("invalid endpoint %q: bad port %q", ep, port)
	}
	return nil
}

// Package egress reports the public address a tunnel exits from, as seen by
// a remote site reached through the local SOCKS5 listener.
package egress

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/net/proxy"

	"wgstart/internal/errors"
	"wgstart/internal/logging"
)

// DefaultURL renders "User contributions for <ip>" for anonymous visitors.
const DefaultURL = "https://en.wikipedia.org/wiki/Special:MyContributions"

const (
	defaultHost = "localhost"
	userAgent   = "wgstart/1.0 (egress check)"
)

var ipRx = regexp.MustCompile(`User contributions for ((?:\d+\.){3}\d+)`)

// Checker fetches URL through a SOCKS5 proxy on Host. Zero fields take
// their defaults; a zero Timeout means no timeout.
type Checker struct {
	URL     string
	Host    string
	Timeout time.Duration
}

// CheckIP makes one request through the SOCKS5 listener on localSocksPort
// and returns the IPv4 address the remote page reports.
func (c *Checker) CheckIP(ctx context.Context, localSocksPort int) (string, error) {
	target := c.URL
	if target == "" {
		target = DefaultURL
	}
	host := c.Host
	if host == "" {
		host = defaultHost
	}
	socksAddr := net.JoinHostPort(host, strconv.Itoa(localSocksPort))

	transport, err := c.transport(socksAddr)
	if err != nil {
		return "", errors.NetworkError(err)
	}
	defer transport.CloseIdleConnections()
	client := &http.Client{Transport: transport, Timeout: c.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", errors.NetworkError(err)
	}
	req.Header.Set("User-Agent", userAgent)

	logging.Debug("checking egress address", "url", target, "socks", socksAddr)
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.NetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NetworkError(fmt.Errorf("read body: %w", err))
	}
	logging.Debug("egress response", "status", resp.StatusCode, "bytes", len(body))

	return ExtractIP(string(body))
}

// transport routes every connection, http and https alike, through socksAddr.
func (c *Checker) transport(socksAddr string) (*http.Transport, error) {
	forward := &net.Dialer{Timeout: c.Timeout}
	dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, forward)
	if err != nil {
		return nil, err
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("socks5 dialer for %s does not support contexts", socksAddr)
	}
	return &http.Transport{
		Proxy:               nil,
		DialContext:         ctxDialer.DialContext,
		TLSHandshakeTimeout: c.Timeout,
	}, nil
}

// ExtractIP returns the first egress address in body.
func ExtractIP(body string) (string, error) {
	m := ipRx.FindStringSubmatch(body)
	if m == nil {
		return "", errors.PatternNotFound()
	}
	return m[1], nil
}

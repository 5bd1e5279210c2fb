package settings

import (
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if s.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", s.Port, DefaultPort)
	}
	if s.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", s.Timeout)
	}
	if s.SocksHost != "localhost" {
		t.Errorf("SocksHost = %q, want localhost", s.SocksHost)
	}
	if s.CheckURL != "" {
		t.Errorf("CheckURL = %q, want empty", s.CheckURL)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"WGSTART_PORT":       "1080",
		"WGSTART_TIMEOUT":    "5s",
		"WGSTART_CHECK_URL":  "http://127.0.0.1:8080/ip",
		"WGSTART_SOCKS_HOST": "127.0.0.1",
		"PORT":               "9999",
	})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if s.Port != 1080 {
		t.Errorf("Port = %d, want 1080", s.Port)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", s.Timeout)
	}
	if s.SocksHost != "127.0.0.1" {
		t.Errorf("SocksHost = %q", s.SocksHost)
	}
	if s.CheckURL != "http://127.0.0.1:8080/ip" {
		t.Errorf("CheckURL = %q", s.CheckURL)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"non-numeric port", map[string]string{"WGSTART_PORT": "http"}},
		{"bad duration", map[string]string{"WGSTART_TIMEOUT": "soon"}},
		{"negative duration", map[string]string{"WGSTART_TIMEOUT": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.vars); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFrom_PortNotRangeChecked(t *testing.T) {
	// A --port flag may still replace it.
	s, err := LoadFrom(map[string]string{"WGSTART_PORT": "0"})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if s.Port != 0 {
		t.Errorf("Port = %d, want 0", s.Port)
	}
}

func TestCheckPort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{1, false},
		{25344, false},
		{65535, false},
		{0, true},
		{-1, true},
		{65536, true},
		{70000, true},
	}

	for _, tt := range tests {
		err := CheckPort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckPort(%d) error = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wgstart/internal/envmap"
	"wgstart/internal/errors"
	"wgstart/internal/logging"
	"wgstart/internal/wgconf"
)

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.UsageError(fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()))
	}
	return nil
}

// configArg accepts exactly one config path.
func configArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.UsageError(fmt.Sprintf("%s takes exactly one config path (got %d arguments)", cmd.CommandPath(), len(args)))
	}
	return nil
}

// loadConfig reads the tunnel config at path.
func loadConfig(path string) (*wgconf.TunnelConfig, error) {
	tc, err := wgconf.Load(path)
	if err != nil {
		return nil, errors.ConfigError("failed to read tunnel config", err)
	}
	return tc, nil
}

// deriveEnv loads path and derives the proxy environment, logging lint
// findings as warnings.
func deriveEnv(path string) (envmap.Env, error) {
	tc, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	env, err := envmap.Derive(tc, port)
	if err != nil {
		return nil, err
	}
	for _, f := range tc.Lint() {
		logging.Warn("config finding", "config", path, "field", f.Section+"."+f.Field, "problem", f.Problem)
	}
	return env, nil
}

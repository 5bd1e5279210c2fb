// Package launch starts the wghttp proxy, or writes a script that does.
package launch

import (
	"context"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"wgstart/internal/envmap"
	"wgstart/internal/errors"
	"wgstart/internal/logging"
	"wgstart/internal/system"
)

// Spec is how the proxy is invoked once its environment is in place.
type Spec struct {
	Binary string
	Args   []string
}

// Proxy is the fixed wghttp invocation.
var Proxy = Spec{Binary: "./wghttp", Args: []string{"-v"}}

// Command returns the binary followed by its arguments.
func (s Spec) Command() []string {
	return append([]string{s.Binary}, s.Args...)
}

// Run starts the proxy with env layered over this process's environment and
// blocks until it exits. The returned status is the proxy's own.
func Run(ctx context.Context, exec system.CommandExecutor, spec Spec, env envmap.Env) (int, error) {
	environ := env.Merge(os.Environ())

	logging.Info("launching proxy", "binary", spec.Binary, "args", spec.Args, "listen", env[envmap.KeyListen])
	status, err := exec.Run(ctx, environ, spec.Binary, spec.Args...)
	if err != nil {
		return -1, errors.LaunchError(spec.Binary, err)
	}
	logging.Debug("proxy exited", "status", status)
	return status, nil
}

// ScriptOptions controls script rendering.
type ScriptOptions struct {
	// Quote shell-escapes values. Off by default: values are written as is
	// and must not contain shell metacharacters.
	Quote bool
}

const shebang = "#!/usr/bin/env bash"

// Script renders env as export statements followed by the launch command.
func Script(spec Spec, env envmap.Env, opts ScriptOptions) []string {
	lines := make([]string, 0, len(env)+2)
	lines = append(lines, shebang)
	for _, name := range env.Names() {
		value := env[name]
		if opts.Quote {
			value = shellquote.Join(value)
		}
		lines = append(lines, "export "+name+"="+value+" ;")
	}
	if opts.Quote {
		lines = append(lines, shellquote.Join(spec.Command()...))
	} else {
		lines = append(lines, strings.Join(spec.Command(), " "))
	}
	return lines
}

package cmd

import (
	"github.com/spf13/cobra"

	"wgstart/internal/errors"
	"wgstart/internal/launch"
	"wgstart/internal/system"
)

var runCmd = &cobra.Command{
	Use:   "run <config>",
	Short: "Run the proxy with the environment derived from a config",
	Long: `Derive the proxy environment from a WireGuard config and run ./wghttp -v
with it, waiting until the proxy exits. wgstart exits with the proxy's
status. If the proxy is killed by a signal, the status is 128 plus the
signal number, as a shell reports it (SIGINT gives 130).`,
	Args: configArg,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	env, err := deriveEnv(args[0])
	if err != nil {
		return err
	}

	status, err := launch.Run(cmd.Context(), system.DefaultExecutor(), launch.Proxy, env)
	if err != nil {
		return err
	}
	if status != 0 {
		return &errors.ExitStatus{Code: status}
	}
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"wgstart/internal/errors"
	"wgstart/internal/logging"
	"wgstart/internal/settings"
)

var (
	verbose    bool
	jsonOutput bool
	port       int

	cfg *settings.Settings
)

var rootCmd = &cobra.Command{
	Use:   "wgstart",
	Short: "Start the wghttp proxy from a WireGuard config",
	Long: `wgstart turns a WireGuard tunnel config into the environment the wghttp
proxy reads, then either runs the proxy or prints a script that does.

The proxy environment:
  DNS, LISTEN, EXIT_MODE, PRIVATE_KEY, CLIENT_IP, PEER_KEY, PEER_ENDPOINT

Defaults come from WGSTART_PORT, WGSTART_TIMEOUT, WGSTART_CHECK_URL and
WGSTART_SOCKS_HOST; flags override them.`,
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
		logging.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

		s, err := settings.Load()
		if err != nil {
			return errors.ConfigError("failed to load settings", err)
		}
		cfg = s
		if !cmd.Flags().Changed("port") {
			port = cfg.Port
			if err := settings.CheckPort(port); err != nil {
				return errors.ConfigError("invalid "+settings.Prefix+"PORT", err)
			}
			return nil
		}
		if err := settings.CheckPort(port); err != nil {
			return errors.UsageError(err.Error())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.UsageError("no command given")
	},
}

// Execute runs the command line and reports failures on stderr. A proxy
// that exited non-zero is not reported; its status is passed through.
func Execute() error {
	logging.SetOutput(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var status *errors.ExitStatus
	if errors.As(err, &status) {
		return err
	}
	if errors.KindOf(err) == errors.KindGeneral {
		err = errors.Wrap(errors.KindUsage, errors.ExitUsage, "invalid invocation", err)
	}
	logging.UserError("%v", err)
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", settings.DefaultPort, "Proxy listen port, also the SOCKS5 port checked by ip (env WGSTART_PORT)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.KindUsage, errors.ExitUsage, "invalid flags", err)
	})
}

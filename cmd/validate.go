package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wgstart/internal/envmap"
	"wgstart/internal/errors"
	"wgstart/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a config the way the proxy will read it",
	Long: `Derive the proxy environment from a WireGuard config and check its key
material and endpoint the way wghttp decodes them. Exits non-zero when
anything is reported.`,
	Args: configArg,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	tc, err := loadConfig(path)
	if err != nil {
		return err
	}
	env, err := envmap.Derive(tc, port)
	if err != nil {
		return err
	}

	findings := tc.Lint()
	for _, f := range findings {
		logging.UserWarning("%s", f)
	}
	if len(findings) > 0 {
		return errors.ConfigError(fmt.Sprintf("%s: %d finding(s)", path, len(findings)), nil)
	}

	logging.UserSuccess("%s: peer %s at %s, client network %s", path,
		env[envmap.KeyPeerKey], env[envmap.KeyPeerEndpoint], env[envmap.KeyClientIP])
	return nil
}

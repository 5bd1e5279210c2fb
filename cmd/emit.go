package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wgstart/internal/launch"
)

var emitCmd = &cobra.Command{
	Use:   "emit <config>",
	Short: "Print a bash script that starts the proxy",
	Long: `Print a bash script that exports the proxy environment derived from a
WireGuard config and then runs ./wghttp -v.

Values are written unescaped unless --quote is given.`,
	Args: configArg,
	RunE: runEmit,
}

var emitQuote bool

func init() {
	emitCmd.Flags().BoolVar(&emitQuote, "quote", false, "Shell-escape exported values")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	env, err := deriveEnv(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range launch.Script(launch.Proxy, env, launch.ScriptOptions{Quote: emitQuote}) {
		fmt.Fprintln(out, line)
	}
	return nil
}

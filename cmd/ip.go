package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wgstart/internal/egress"
)

var ipCmd = &cobra.Command{
	Use:   "ip",
	Short: "Report the egress IP address seen through the proxy",
	Long: `Fetch a Wikipedia page through the proxy's SOCKS5 listener and print the
address Wikipedia attributes anonymous edits to. The proxy must already be
listening on --port.`,
	Args: noArgs,
	RunE: runIP,
}

func init() {
	rootCmd.AddCommand(ipCmd)
}

func runIP(cmd *cobra.Command, args []string) error {
	checker := &egress.Checker{
		URL:     cfg.CheckURL,
		Host:    cfg.SocksHost,
		Timeout: cfg.Timeout,
	}

	ip, err := checker.CheckIP(cmd.Context(), port)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "My IP:", ip)
	return nil
}

package main

import (
	"os"

	"wgstart/cmd"
	"wgstart/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}

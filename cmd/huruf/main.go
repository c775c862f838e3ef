// Command huruf is the Abjad numerology CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hurufapp/huruf/internal/cli"
	"github.com/hurufapp/huruf/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceUsage = true
	return root.Execute()
}

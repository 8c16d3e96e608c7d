// Command cableviz renders cable temperature predictions in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/econum/cableviz/internal/cli"
	"github.com/econum/cableviz/pkg/version"
)

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

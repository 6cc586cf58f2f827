// SPDX-License-Identifier: MIT

// Command graphz builds a weighted graph from flags and queries it.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphz/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphz:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

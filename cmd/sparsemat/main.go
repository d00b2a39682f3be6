package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sparsemat:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

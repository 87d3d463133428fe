// Habitify is a CLI tool for tracking daily habits.
package main

import (
	"fmt"
	"os"

	"github.com/swamp-dev/habitify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

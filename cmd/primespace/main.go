// Command primespace is the CLI client for the PrimeSpace API.
package main

import (
	"fmt"
	"os"

	"primespace/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

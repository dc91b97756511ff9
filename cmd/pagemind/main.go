// Package main is the entry point for the pagemind server.
package main

import (
	"os"

	"pagemind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the cgoconf CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/cgoconf/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}

// Package main is the entry point for the rejstrik CLI.
package main

import (
	"os"

	"github.com/prozkosny/pydata-zdenka/cmd/rejstrik/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

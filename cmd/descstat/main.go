// Package main provides the entry point for the descstat CLI tool.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/sartorproj/godescriptive/cmd/descstat/commands"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

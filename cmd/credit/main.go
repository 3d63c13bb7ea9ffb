package main

import (
	"os"

	"github.com/dayumstir/IS4103-Capstone/cmd/credit/commands"
)

// main is the entry point for the credit CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

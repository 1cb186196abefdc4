package main

import (
	"os"

	"github.com/mmynk/dayplanner/internal/commands"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	commands.SetVersion(version)
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

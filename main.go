package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ccline/internal/cmd"
	"ccline/version"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("ccline"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

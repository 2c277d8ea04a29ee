package main

import (
	"fmt"
	"os"

	"github.com/zettelsite/zettelsite-settings/cmd/commands"
	"github.com/zettelsite/zettelsite-settings/pkg/logger"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	defer logger.Sync()

	rootCmd := commands.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

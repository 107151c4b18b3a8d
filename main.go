package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thenoetrevino/tack/cmd"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/logging"
)

func main() {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(cli.ExitError)
	}

	err = cmd.Execute(context.Background())
	_ = logFile.Close()
	os.Exit(cli.ExitCode(err))
}

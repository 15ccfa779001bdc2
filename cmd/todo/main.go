// Package main is the entry point for the todo CLI.
package main

import (
	"os"

	"github.com/leeovery/todo/internal/cli"
)

func main() {
	app := &cli.App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTTY:  cli.DetectTTY(os.Stdout),
	}

	os.Exit(app.Run(os.Args))
}

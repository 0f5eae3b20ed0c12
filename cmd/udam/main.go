// Package main is the entry point for the udam server.
package main

import (
	"os"

	"github.com/CyberSolo/UDAM/cmd/udam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

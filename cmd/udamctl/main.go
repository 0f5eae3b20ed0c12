// Package main is the entry point for the udamctl CLI client.
package main

import (
	"github.com/CyberSolo/UDAM/cmd/udamctl/cmd"
)

func main() {
	cmd.Execute()
}

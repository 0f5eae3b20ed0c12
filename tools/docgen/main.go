// Package main generates CLI reference documentation for the udam server and
// the udamctl client, one markdown tree per binary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	serverCmd "github.com/CyberSolo/UDAM/cmd/udam/cmd"
	clientCmd "github.com/CyberSolo/UDAM/cmd/udamctl/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"udam":    serverCmd.Root(),
		"udamctl": clientCmd.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
		fmt.Printf("%s docs generated in %s/\n", name, dir)
	}
}

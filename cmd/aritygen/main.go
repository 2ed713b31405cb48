// Command aritygen regenerates the per-arity source files of the arity
// package from gen.yaml. It is wired to `go generate ./...` at the
// repository root.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/comalice/arity/internal/gen"
)

func main() {
	configPath := flag.String("config", "gen.yaml", "path to the generator config")
	outDir := flag.String("out", ".", "directory to write the generated files into")
	flag.Parse()

	c, err := gen.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aritygen: %v\n", err)
		os.Exit(1)
	}

	files, err := gen.Files(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aritygen: %v\n", err)
		os.Exit(1)
	}

	// Stable write order so logs are reproducible.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "aritygen: write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(files[name]))
	}
}

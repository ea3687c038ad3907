// Package main generates markdown reference documentation for leapquery
// from the CLI command tree, the dialect registry, and the configuration
// schema.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=dialects -outdir=docs/dialects
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, dialects, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generators maps each -gen value to its writer and default directory
// under docs/.
var generators = map[string]struct {
	dir string
	run func(outDir string) error
}{
	"cli":      {dir: "cli", run: generateCLIDocs},
	"dialects": {dir: "dialects", run: generateDialectDocs},
	"config":   {dir: "", run: generateConfigDocs},
}

func main() {
	flag.Parse()

	names := []string{"cli", "dialects", "config"}
	if *genFlag != "all" {
		if _, ok := generators[*genFlag]; !ok {
			log.Fatalf("unknown -gen value: %s (use: cli, dialects, config, all)", *genFlag)
		}
		names = []string{*genFlag}
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	for _, name := range names {
		g := generators[name]
		outDir := *outDirFlag
		if outDir == "" || *genFlag == "all" {
			outDir = filepath.Join(projectRoot, "docs", g.dir)
		}
		if err := g.run(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", name, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

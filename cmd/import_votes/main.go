// Command import_votes loads a saved Fragrantica page dump from a text file
// and stores the parsed community votes on one perfume, matched by name.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/config"
	"github.com/boshow88/Perfume-Tracker/internal/fragrantica"
	"github.com/boshow88/Perfume-Tracker/internal/store"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <perfume name> <page-dump.txt>\n", os.Args[0])
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(name, dumpPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	raw, err := os.ReadFile(dumpPath)
	if err != nil {
		return fmt.Errorf("read page dump: %w", err)
	}

	st := store.New(cfg.Data.Path)
	library, err := st.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	perfume := findByName(library, name)
	if perfume == nil {
		return fmt.Errorf("no perfume named %q in %s", name, cfg.Data.Path)
	}

	votes, warnings := fragrantica.Parse(string(raw))
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if votes.IsZero() {
		return fmt.Errorf("no vote blocks found in %s", dumpPath)
	}

	perfume.Fragrantica.Merge(votes)
	perfume.Touch()
	library.Touch()
	if err := st.Save(library); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	fmt.Printf("imported votes for %s (%d warnings)\n", perfume.Name, len(warnings))
	return nil
}

func findByName(library *catalog.Library, name string) *catalog.Perfume {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range library.Perfumes {
		if strings.ToLower(p.Name) == want {
			return p
		}
	}
	return nil
}

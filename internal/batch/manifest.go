package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// manifestEntry is one line of the render manifest.
type manifestEntry struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// WriteManifest writes a JSON index of the successfully rendered poses so
// downstream consumers can find files without globbing.
func WriteManifest(path string, results []Result) error {
	entries := make([]manifestEntry, 0, len(results))
	for _, r := range results {
		if r.Success {
			entries = append(entries, manifestEntry{Name: r.Name, File: r.Path})
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}

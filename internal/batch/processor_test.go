package batch

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/cartridge"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/render"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

func testCartridge() *cartridge.Cartridge {
	standing := pose.Default()
	bent := standing.Apply(pose.Update{Angles: map[schema.Joint]float64{
		schema.Torso: 45,
	}})
	return &cartridge.Cartridge{
		Name: "warmup",
		Poses: map[string]pose.Pose{
			"standing": standing,
			"bent":     bent,
			"zero":     {},
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_RendersEveryPose(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir: dir,
		Render:    render.Options{Size: 32, Supersample: 1},
		Workers:   2,
		Logger:    quietLogger(),
	}

	results := Run(cfg, testCartridge())
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	// Results follow sorted pose-name order.
	wantNames := []string{"bent", "standing", "zero"}
	for i, r := range results {
		if r.Name != wantNames[i] {
			t.Errorf("result %d name = %q, want %q", i, r.Name, wantNames[i])
		}
		if !r.Success {
			t.Errorf("pose %q failed: %s", r.Name, r.Error)
		}
		if _, err := os.Stat(filepath.Join(dir, r.Name+".webp")); err != nil {
			t.Errorf("pose %q output missing: %v", r.Name, err)
		}
	}
}

func TestRun_ReportsEncodeFailures(t *testing.T) {
	// A file standing where the output directory should be makes every
	// create fail without touching the render path.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "out")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		OutputDir: blocked,
		Render:    render.Options{Size: 16, Supersample: 1},
		Workers:   1,
		Logger:    quietLogger(),
	}
	results := Run(cfg, testCartridge())
	for _, r := range results {
		if r.Success || r.Error == "" {
			t.Errorf("pose %q should have failed", r.Name)
		}
	}
}

func TestWriteManifest_ListsOnlySuccesses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Name: "standing", Path: "out/standing.webp", Success: true},
		{Name: "bent", Path: "out/bent.webp", Error: "disk full"},
	}
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []struct {
		Name string `json:"name"`
		File string `json:"file"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "standing" || entries[0].File != "out/standing.webp" {
		t.Errorf("entries = %+v", entries)
	}
}

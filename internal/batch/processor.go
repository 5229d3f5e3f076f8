// Package batch renders every pose of a cartridge to per-pose WebP files
// using a worker pool. Each worker owns its whole pipeline (FK, raster,
// encode) so the only shared state is the results slice, written at
// disjoint indices.
package batch

import (
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/cartridge"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/export"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/render"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Render    render.Options
	Workers   int
	Logger    *slog.Logger
}

// Result holds the outcome of rendering one pose.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// Run renders all poses of the cartridge. The returned results are in
// the cartridge's sorted pose-name order.
func Run(cfg Config, cart *cartridge.Cartridge) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	names := cart.PoseNames()
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("batch progress",
						"done", p, "total", total,
						"rate", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	work := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = renderPose(cfg, names[idx], cart)
				processed.Add(1)
			}
		}()
	}

	for i := range names {
		work <- i
	}
	close(work)

	wg.Wait()
	close(done)

	return results
}

func renderPose(cfg Config, name string, cart *cartridge.Cartridge) Result {
	img := render.Figure(cart.Poses[name], cfg.Render)
	outPath := filepath.Join(cfg.OutputDir, name+".webp")
	if err := export.WebP(outPath, img); err != nil {
		return Result{Name: name, Path: outPath, Error: err.Error()}
	}
	return Result{Name: name, Path: outPath, Success: true}
}

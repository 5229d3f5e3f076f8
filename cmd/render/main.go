package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/batch"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/cartridge"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/config"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/export"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/render"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/session"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	cartridgePath := flag.String("cartridge", "", "Path to cartridge JSON file")
	outputDir := flag.String("output", "", "Output directory (default: <cartridge dir>/renders)")
	poseName := flag.String("pose", "", "Render only this named pose")
	animName := flag.String("animate", "", "Render this named sequence as an animated WebP")
	tween := flag.Bool("tween", false, "Interpolate between frames when animating")
	fps := flag.Float64("fps", 0, "Playback rate for animation (default: 6)")
	size := flag.Int("size", 0, "Canvas size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	asTGA := flag.Bool("tga", false, "Write single-pose renders as TGA instead of WebP")

	flag.Parse()

	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	)
	slog.SetDefault(logger)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Cartridge: *cartridgePath,
		OutputDir: *outputDir,
		Size:      *size,
		Workers:   *workers,
		FPS:       *fps,
	})

	if cfg.Cartridge == "" {
		fmt.Fprintln(os.Stderr, "Error: no cartridge file. Use -cartridge or config.json.")
		os.Exit(1)
	}

	cart, err := cartridge.Load(cfg.Cartridge)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cartridge: %v\n", err)
		os.Exit(1)
	}
	logger.Info("cartridge loaded", "name", cart.Name,
		"poses", len(cart.Poses), "sequences", len(cart.Sequences))

	renderOpts := render.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		StrokeWidth: cfg.StrokeWidth,
	}

	switch {
	case *poseName != "":
		renderOne(cfg, cart, *poseName, renderOpts, *asTGA)
	case *animName != "":
		animate(cfg, cart, *animName, renderOpts, *tween)
	default:
		renderAll(cfg, cart, renderOpts, logger)
	}
}

func renderOne(cfg config.Config, cart *cartridge.Cartridge, name string, opts render.Options, asTGA bool) {
	p, ok := cart.Poses[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: cartridge has no pose %q\n", name)
		os.Exit(1)
	}

	img := render.Figure(p, opts)
	var outPath string
	var err error
	if asTGA {
		outPath = filepath.Join(cfg.OutputDir, name+".tga")
		err = export.TGA(outPath, img)
	} else {
		outPath = filepath.Join(cfg.OutputDir, name+".webp")
		err = export.WebP(outPath, img)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered: %s\n", outPath)
}

// animate drives the playback scheduler offline: a synthetic clock ticks
// through exactly one loop of the sequence and each displayed pose becomes
// one frame of the animated WebP.
func animate(cfg config.Config, cart *cartridge.Cartridge, name string, opts render.Options, tween bool) {
	frames, ok := cart.Sequences[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: cartridge has no sequence %q\n", name)
		os.Exit(1)
	}

	maxFrames := cfg.MaxFrames
	if len(frames) > maxFrames {
		maxFrames = len(frames)
	}
	sess := session.NewWith(frames[0], maxFrames, cfg.Threshold)
	for _, p := range frames[1:] {
		sess.AddFrame()
		sess.ReplaceCurrent(p)
	}
	sess.SelectFrame(0)
	sess.SetFPS(cfg.FPS)
	sess.SetTweening(tween)

	subdiv := 1
	if tween {
		subdiv = 5
	}
	step := time.Duration(float64(time.Second) / cfg.FPS / float64(subdiv))

	start := time.Now()
	sess.Play(start)

	imgs := make([]*image.NRGBA, 0, sess.Len()*subdiv)
	for i := 0; i < sess.Len()*subdiv; i++ {
		p := sess.Tick(start.Add(time.Duration(i) * step))
		imgs = append(imgs, render.Figure(p, opts))
	}

	outPath := filepath.Join(cfg.OutputDir, name+".webp")
	if err := export.AnimatedWebP(outPath, imgs, step); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Animated: %s (%d frames)\n", outPath, len(imgs))
}

func renderAll(cfg config.Config, cart *cartridge.Cartridge, opts render.Options, logger *slog.Logger) {
	fmt.Printf("Bitruvius cartridge render → WebP\n")
	fmt.Printf("Poses: %d, Workers: %d\n", len(cart.Poses), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Render:    opts,
		Workers:   cfg.Workers,
		Logger:    logger,
	}, cart)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

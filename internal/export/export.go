// Package export writes rendered frames to disk: still WebP, animated
// WebP for whole sequences, and TGA for tools that want an uncompressed
// interchange still.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// WebP writes a single frame as a lossless WebP file.
func WebP(path string, img *image.NRGBA) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("export: webp encode %s: %w", path, err)
	}
	return nil
}

// AnimatedWebP writes a frame list as a looping animated WebP. frameDur
// is the display time of each frame.
func AnimatedWebP(path string, frames []*image.NRGBA, frameDur time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames for %s", path)
	}

	anim := nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
		LoopCount: 0, // loop forever
	}
	ms := uint(frameDur / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	for i, fr := range frames {
		anim.Images[i] = fr
		anim.Durations[i] = ms
		anim.Disposals[i] = 1 // clear to background between frames
	}

	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, &anim, nil); err != nil {
		return fmt.Errorf("export: animated webp encode %s: %w", path, err)
	}
	return nil
}

// TGA writes a single frame as a TGA file.
func TGA(path string, img *image.NRGBA) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tga.Encode(f, img); err != nil {
		return fmt.Errorf("export: tga encode %s: %w", path, err)
	}
	return nil
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("export: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: create %s: %w", path, err)
	}
	return f, nil
}

// Package cartridge loads externally supplied pose libraries: JSON files
// of named pose records, optionally with named frame sequences. The engine
// consumes cartridges but never writes them.
package cartridge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
)

// Cartridge is one loaded pose library.
type Cartridge struct {
	Name      string
	Poses     map[string]pose.Pose
	Sequences map[string][]pose.Pose
}

// cartridgeFile matches the JSON schema of a cartridge file.
type cartridgeFile struct {
	Name      string                   `json:"name"`
	Poses     map[string]pose.Record   `json:"poses"`
	Sequences map[string][]pose.Record `json:"sequences"`
}

// Load reads and validates a cartridge file. Every record must be a
// complete pose; a sequence must hold at least one frame.
func Load(path string) (*Cartridge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: read %s: %w", path, err)
	}

	var file cartridgeFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("cartridge: parse %s: %w", path, err)
	}

	c := &Cartridge{
		Name:      file.Name,
		Poses:     make(map[string]pose.Pose, len(file.Poses)),
		Sequences: make(map[string][]pose.Pose, len(file.Sequences)),
	}
	for name, rec := range file.Poses {
		p, err := pose.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("cartridge: pose %q: %w", name, err)
		}
		c.Poses[name] = p
	}
	for name, recs := range file.Sequences {
		if len(recs) == 0 {
			return nil, fmt.Errorf("cartridge: sequence %q is empty", name)
		}
		frames := make([]pose.Pose, 0, len(recs))
		for i, rec := range recs {
			p, err := pose.FromRecord(rec)
			if err != nil {
				return nil, fmt.Errorf("cartridge: sequence %q frame %d: %w", name, i, err)
			}
			frames = append(frames, p)
		}
		c.Sequences[name] = frames
	}
	return c, nil
}

// PoseNames returns the pose names in stable sorted order.
func (c *Cartridge) PoseNames() []string {
	names := make([]string, 0, len(c.Poses))
	for n := range c.Poses {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SequenceNames returns the sequence names in stable sorted order.
func (c *Cartridge) SequenceNames() []string {
	names := make([]string, 0, len(c.Sequences))
	for n := range c.Sequences {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

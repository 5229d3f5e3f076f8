package cartridge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

func writeCartridge(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "poses.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_PosesAndSequences(t *testing.T) {
	standing := pose.Default()
	bent := standing.Apply(pose.Update{Angles: map[schema.Joint]float64{
		schema.Torso: 30,
	}})

	path := writeCartridge(t, map[string]any{
		"name": "warmup",
		"poses": map[string]pose.Record{
			"standing": standing.Record(),
			"bent":     bent.Record(),
		},
		"sequences": map[string][]pose.Record{
			"bow": {standing.Record(), bent.Record(), standing.Record()},
		},
	})

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "warmup" {
		t.Errorf("name = %q", c.Name)
	}
	if got := c.Poses["standing"]; got != standing {
		t.Errorf("standing pose did not round-trip")
	}
	if got := c.Poses["bent"]; got != bent {
		t.Errorf("bent pose did not round-trip")
	}
	seq := c.Sequences["bow"]
	if len(seq) != 3 || seq[1] != bent {
		t.Errorf("sequence bow = %d frames", len(seq))
	}
	if got := c.PoseNames(); len(got) != 2 || got[0] != "bent" || got[1] != "standing" {
		t.Errorf("PoseNames = %v", got)
	}
	if got := c.SequenceNames(); len(got) != 1 || got[0] != "bow" {
		t.Errorf("SequenceNames = %v", got)
	}
}

func TestLoad_ShippedCartridge(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "warmup.json"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Poses["standing"] != pose.Default() {
		t.Error("standing must match the default pose")
	}
	if got := c.Poses["reach"].Correctives[schema.LeftShoulder]; got != 10 {
		t.Errorf("reach leftShoulder corrective = %v", got)
	}
	if len(c.Sequences["wave"]) != 3 {
		t.Errorf("wave = %d frames", len(c.Sequences["wave"]))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_IncompletePoseNamesThePose(t *testing.T) {
	rec := pose.Default().Record()
	delete(rec, "torso")
	path := writeCartridge(t, map[string]any{
		"name":  "broken",
		"poses": map[string]pose.Record{"hunch": rec},
	})

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for incomplete pose")
	}
	if !strings.Contains(err.Error(), `"hunch"`) {
		t.Errorf("error does not name the pose: %v", err)
	}
}

func TestLoad_EmptySequenceRejected(t *testing.T) {
	path := writeCartridge(t, map[string]any{
		"name":      "broken",
		"sequences": map[string][]pose.Record{"idle": {}},
	})
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

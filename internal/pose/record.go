package pose

import (
	"fmt"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

// Record is the interchange form of a Pose: a flat field-name → number
// map, with the root position as a nested {x,y} pair. It is what pose
// libraries ship and what clipboard/file export reads and writes; a
// Record produced by Pose.Record round-trips through encoding/json back
// to the identical Pose.
type Record map[string]any

const correctiveSuffix = "Corrective"

// Record converts the pose to its interchange form. Corrective fields are
// written only for joints that carry one.
func (p Pose) Record() Record {
	r := Record{
		"root":         map[string]any{"x": p.Root.X, "y": p.Root.Y},
		"rootRotation": p.RootRotation,
	}
	for j := 0; j < schema.JointCount; j++ {
		joint := schema.Joint(j)
		r[joint.String()] = p.Angles[j]
		if joint.HasCorrective() {
			r[joint.String()+correctiveSuffix] = p.Correctives[j]
		}
	}
	return r
}

// FromRecord rebuilds a Pose from its interchange form. The root, the root
// rotation and every joint angle are required (a Pose is never partial);
// corrective fields may be omitted and default to zero. Unknown field
// names are rejected so that a misspelled joint in a hand-written pose
// library fails loudly instead of being dropped.
func FromRecord(r Record) (Pose, error) {
	var p Pose
	seen := make(map[string]bool, len(r))

	rootRaw, ok := r["root"]
	if !ok {
		return Pose{}, fmt.Errorf("pose: record missing root")
	}
	root, ok := rootRaw.(map[string]any)
	if !ok {
		return Pose{}, fmt.Errorf("pose: root must be an {x,y} pair, got %T", rootRaw)
	}
	var err error
	if p.Root.X, err = number(root, "x"); err != nil {
		return Pose{}, fmt.Errorf("pose: root: %w", err)
	}
	if p.Root.Y, err = number(root, "y"); err != nil {
		return Pose{}, fmt.Errorf("pose: root: %w", err)
	}
	seen["root"] = true

	if p.RootRotation, err = number(map[string]any(r), "rootRotation"); err != nil {
		return Pose{}, fmt.Errorf("pose: %w", err)
	}
	seen["rootRotation"] = true

	for j := 0; j < schema.JointCount; j++ {
		joint := schema.Joint(j)
		name := joint.String()
		if p.Angles[j], err = number(map[string]any(r), name); err != nil {
			return Pose{}, fmt.Errorf("pose: %w", err)
		}
		seen[name] = true
		if !joint.HasCorrective() {
			continue
		}
		cname := name + correctiveSuffix
		if _, ok := r[cname]; ok {
			if p.Correctives[j], err = number(map[string]any(r), cname); err != nil {
				return Pose{}, fmt.Errorf("pose: %w", err)
			}
		}
		seen[cname] = true
	}

	for k := range r {
		if !seen[k] {
			return Pose{}, fmt.Errorf("pose: unknown record field %q", k)
		}
	}
	return p, nil
}

func number(m map[string]any, key string) (float64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("record missing %q", key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("record field %q is %T, want number", key, raw)
	}
}

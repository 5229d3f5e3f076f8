// Package kinematics resolves global joint positions from a pose (forward
// kinematics) and recovers local joint angles from a target position for
// two-bone limb chains (inverse kinematics). It is pure math over the
// schema: no state, no side effects, cheap enough to run on every edit.
package kinematics

import (
	"math"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

// ResolveJoints computes the global position of every joint of the figure
// for one pose. It walks the schema's bone array in a single forward pass,
// accumulating the chain rotation as the running sum of base angles and
// primary joint angles.
//
// Corrective angles never enter that accumulation. A corrective c on a
// bone of length L shifts the bone's proximal anchor by
// (L·sin c, L·(1−cos c)) in the bone's unrotated frame and tilts the bone
// itself by c on top of its primary angle; descendants inherit only the
// primary accumulation, so a corrective moves a child's position but
// never its global orientation.
func ResolveJoints(p pose.Pose) map[schema.Point]mathutil.Vec2 {
	out := make(map[schema.Point]mathutil.Vec2, schema.PointCount)
	out[schema.PointRoot] = p.Root

	rootRot := mathutil.Deg2Rad(p.RootRotation)
	distal := make([]mathutil.Vec2, len(schema.Bones))
	accum := make([]float64, len(schema.Bones))

	for i, b := range schema.Bones {
		var anchor mathutil.Vec2
		var g float64
		if b.Parent < 0 {
			anchor, g = p.Root, rootRot
		} else {
			anchor, g = distal[b.Parent], accum[b.Parent]
		}
		if b.Offset != (mathutil.Vec2{}) {
			anchor = anchor.Add(b.Offset.Rotate(g))
		}

		frame := g + mathutil.Deg2Rad(b.Base)
		r := mathutil.Deg2Rad(p.Angle(b.Joint))
		c := mathutil.Deg2Rad(p.Corrective(b.Joint))
		if c != 0 {
			shift := mathutil.Vec2{
				X: b.Length * math.Sin(c),
				Y: b.Length * (1 - math.Cos(c)),
			}
			anchor = anchor.Add(shift.Rotate(frame))
		}

		end := anchor.Add(mathutil.Dir(frame + r + c).Scale(b.Length))

		out[b.Proximal] = anchor
		out[b.Distal] = end
		distal[i] = end
		accum[i] = frame + r // child pinning: corrective excluded
	}
	return out
}

// ChainAncestorRotation returns the accumulated global rotation, in
// degrees, of everything above a limb chain's first joint: the root
// rotation, the torso (for arm chains) and the chain's per-side base
// angle. Feeding it to SolveTwoBone makes the solver's first output the
// chain's local primary angle directly.
func ChainAncestorRotation(p pose.Pose, ch schema.Chain) float64 {
	sum := p.RootRotation + ch.Base
	if ch.ThroughTorso {
		sum += schema.TorsoBase + p.Angle(schema.Torso)
	}
	return sum
}

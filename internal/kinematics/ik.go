package kinematics

import (
	"math"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
)

// reachEpsilon keeps the law-of-cosines triangle solvable when a target
// sits at or beyond full extension.
const reachEpsilon = 1e-6

// SolveTwoBone places the end effector of a planar two-segment chain at
// (or as near as possible to) target, returning the two local joint
// angles in degrees.
//
// ancestorRot is the accumulated global rotation above the chain's first
// joint (degrees, base angle included — see ChainAncestorRotation); rootPos
// is the chain-root joint's global position; l1 and l2 the segment
// lengths. bendSign (+1 or −1) picks one of the two mirror solutions for
// the middle joint; callers keep it sticky by deriving it from the current
// pose (see BendSign) so small target moves never snap the knee or elbow
// to the other side.
//
// The solver is total: targets beyond full reach are clamped onto the
// root→target ray, and a target on the chain root itself leaves the chain
// where it is by returning the caller's current angles cur1, cur2.
func SolveTwoBone(ancestorRot float64, rootPos, target mathutil.Vec2, l1, l2, bendSign, cur1, cur2 float64) (float64, float64) {
	d := target.Sub(rootPos)
	dist := d.Len()
	if dist < reachEpsilon {
		return cur1, cur2
	}

	reach := math.Min(dist, l1+l2-reachEpsilon)

	// Law of cosines: a at the chain root between the first segment and
	// the root→target line, b inside the middle joint.
	cosA := (l1*l1 + reach*reach - l2*l2) / (2 * l1 * reach)
	a := math.Acos(mathutil.Clamp(cosA, -1, 1))
	cosB := (l1*l1 + l2*l2 - reach*reach) / (2 * l1 * l2)
	b := math.Acos(mathutil.Clamp(cosB, -1, 1))

	g1 := mathutil.DirAngle(d) - a*bendSign
	angle1 := mathutil.Rad2Deg(g1) - ancestorRot
	angle2 := mathutil.Rad2Deg((math.Pi - b) * bendSign)
	return angle1, angle2
}

// BendSign derives the sticky bend direction from the chain's current
// middle-joint angle. A straight chain defaults to +1.
func BendSign(currentMiddleAngle float64) float64 {
	if currentMiddleAngle < 0 {
		return -1
	}
	return 1
}

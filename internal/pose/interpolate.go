package pose

import (
	"math"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
)

// Interpolate blends two poses by t, clamped to [0,1]. Every scalar field
// is interpolated independently and linearly; angles get no wrap-around or
// shortest-path treatment, so callers that care about visual continuity
// must keep their source angles in a continuous range.
func Interpolate(a, b Pose, t float64) Pose {
	t = mathutil.Clamp(t, 0, 1)
	out := a
	out.Root.X = lerp(a.Root.X, b.Root.X, t)
	out.Root.Y = lerp(a.Root.Y, b.Root.Y, t)
	out.RootRotation = lerp(a.RootRotation, b.RootRotation, t)
	for i := range out.Angles {
		out.Angles[i] = lerp(a.Angles[i], b.Angles[i], t)
		out.Correctives[i] = lerp(a.Correctives[i], b.Correctives[i], t)
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Deviation measures how different two poses are: the largest magnitude of
// change over all comparable scalar fields. The root's two components are
// folded into a single Euclidean distance before comparison; all other
// fields are rotation angles compared by absolute difference. The distance
// is in pixels while the angles are in degrees, and the two deliberately
// share one scale (the auto-record threshold was tuned against exactly
// this mixed-unit metric).
func Deviation(a, b Pose) float64 {
	max := a.Root.Dist(b.Root)
	if d := math.Abs(a.RootRotation - b.RootRotation); d > max {
		max = d
	}
	for i := range a.Angles {
		if d := math.Abs(a.Angles[i] - b.Angles[i]); d > max {
			max = d
		}
		if d := math.Abs(a.Correctives[i] - b.Correctives[i]); d > max {
			max = d
		}
	}
	return max
}

// Package pose holds the mutable per-frame state of the figure: the root
// transform plus one rotation angle (and, on shoulders and thighs, a
// corrective angle) per joint. A Pose is a plain value; edits and
// interpolation produce new values, never mutate in place.
package pose

import (
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

// Pose is one complete body configuration. All angles are degrees.
// Correctives entries are meaningful only for joints where
// schema.Joint.HasCorrective is true and stay zero everywhere else.
type Pose struct {
	Root         mathutil.Vec2
	RootRotation float64
	Angles       [schema.JointCount]float64
	Correctives  [schema.JointCount]float64
}

// Angle returns the primary rotation of joint j, or 0 for schema.JointNone.
func (p Pose) Angle(j schema.Joint) float64 {
	if j < 0 || int(j) >= schema.JointCount {
		return 0
	}
	return p.Angles[j]
}

// Corrective returns the corrective angle of joint j, or 0 when j carries none.
func (p Pose) Corrective(j schema.Joint) float64 {
	if j < 0 || int(j) >= schema.JointCount {
		return 0
	}
	return p.Correctives[j]
}

// Default returns the stock standing pose: arms hanging slightly away from
// the torso, legs a little apart, feet flat.
func Default() Pose {
	var p Pose
	p.Angles[schema.LeftShoulder] = 60
	p.Angles[schema.RightShoulder] = -60
	p.Angles[schema.LeftForearm] = 15
	p.Angles[schema.RightForearm] = -15
	p.Angles[schema.LeftThigh] = 85
	p.Angles[schema.RightThigh] = -85
	return p
}

// Update is a partial pose edit. Nil pointer fields and absent map keys
// leave the corresponding channel untouched.
type Update struct {
	Root         *mathutil.Vec2
	RootRotation *float64
	Angles       map[schema.Joint]float64
	Correctives  map[schema.Joint]float64
}

// Apply returns a new Pose with the update merged in. Corrective entries
// for joints that carry no corrective are dropped, keeping the
// zero-elsewhere invariant intact even for careless callers.
func (p Pose) Apply(u Update) Pose {
	out := p
	if u.Root != nil {
		out.Root = *u.Root
	}
	if u.RootRotation != nil {
		out.RootRotation = *u.RootRotation
	}
	for j, a := range u.Angles {
		if j >= 0 && int(j) < schema.JointCount {
			out.Angles[j] = a
		}
	}
	for j, c := range u.Correctives {
		if j >= 0 && int(j) < schema.JointCount && j.HasCorrective() {
			out.Correctives[j] = c
		}
	}
	return out
}

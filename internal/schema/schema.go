// Package schema holds the static description of the mannequin figure:
// bone topology, segment lengths, attachment offsets and per-chain base
// angles. Everything in this package is immutable after process start;
// only the rotation angles stored in a Pose change at runtime.
package schema

import "github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"

// Joint enumerates the mutable rotation channels of a pose.
type Joint int

const (
	Torso Joint = iota
	Neck
	LeftShoulder
	LeftForearm
	LeftWrist
	RightShoulder
	RightForearm
	RightWrist
	LeftThigh
	LeftCalf
	LeftAnkle
	LeftToes
	RightThigh
	RightCalf
	RightAnkle
	RightToes

	JointCount int = iota
)

var jointNames = [JointCount]string{
	"torso", "neck",
	"leftShoulder", "leftForearm", "leftWrist",
	"rightShoulder", "rightForearm", "rightWrist",
	"leftThigh", "leftCalf", "leftAnkle", "leftToes",
	"rightThigh", "rightCalf", "rightAnkle", "rightToes",
}

func (j Joint) String() string {
	if j < 0 || int(j) >= JointCount {
		return "invalid"
	}
	return jointNames[j]
}

// JointByName maps serialized field names back to joints.
var JointByName = func() map[string]Joint {
	m := make(map[string]Joint, JointCount)
	for i, n := range jointNames {
		m[n] = Joint(i)
	}
	return m
}()

// HasCorrective reports whether j carries a secondary corrective angle
// (pivot shift). Only the shoulders and thighs do.
func (j Joint) HasCorrective() bool {
	switch j {
	case LeftShoulder, RightShoulder, LeftThigh, RightThigh:
		return true
	}
	return false
}

// Point enumerates the resolved global joint positions reported by the
// forward-kinematics resolver.
type Point int

const (
	PointRoot Point = iota
	PointNeck
	PointHead
	PointLeftShoulder
	PointLeftElbow
	PointLeftWrist
	PointLeftHand
	PointRightShoulder
	PointRightElbow
	PointRightWrist
	PointRightHand
	PointPelvis
	PointLeftHip
	PointLeftKnee
	PointLeftAnkle
	PointLeftBall
	PointLeftToe
	PointRightHip
	PointRightKnee
	PointRightAnkle
	PointRightBall
	PointRightToe

	PointCount int = iota
)

var pointNames = [PointCount]string{
	"root", "neck", "head",
	"leftShoulder", "leftElbow", "leftWrist", "leftHand",
	"rightShoulder", "rightElbow", "rightWrist", "rightHand",
	"pelvis",
	"leftHip", "leftKnee", "leftAnkle", "leftBall", "leftToe",
	"rightHip", "rightKnee", "rightAnkle", "rightBall", "rightToe",
}

func (p Point) String() string {
	if p < 0 || int(p) >= PointCount {
		return "invalid"
	}
	return pointNames[p]
}

// JointNone marks a bone with no rotation channel of its own (the pelvis,
// driven only by the root rotation).
const JointNone Joint = -1

// Bone is one segment of the figure. Bones form a flat array with parent
// indices; parents always precede children so a single forward pass
// resolves the whole figure.
type Bone struct {
	Joint  Joint         // rotation channel, JointNone for the pelvis
	Parent int           // index into Bones, -1 for the two chain roots
	Length float64       // fixed segment length
	Offset mathutil.Vec2 // attachment offset from the parent's distal end, in the parent's rotated frame
	Base   float64       // fixed base angle in degrees, part of the chain accumulation

	Proximal Point // resolved position of the proximal joint (after corrective shift)
	Distal   Point // resolved position of the distal end
}

// Segment lengths and offsets. These constants are data contracts: every
// shipped pose record assumes them.
const (
	TorsoLength    = 52.0
	HeadLength     = 30.0
	UpperArmLength = 40.0
	ForearmLength  = 36.0
	HandLength     = 14.0
	PelvisLength   = 14.0
	ThighLength    = 48.0
	CalfLength     = 44.0
	FootLength     = 18.0
	ToeLength      = 9.0

	ShoulderOffsetX = 17.0
	ShoulderOffsetY = 4.0
	HipOffsetX      = 10.0

	// Chain base angles, degrees. The torso chain points up, the pelvis
	// chain down; arms and thighs take a per-side quarter turn so that
	// angle 0 is the spread "vitruvian" rest; feet take the opposite
	// quarter turn so ankle angle 0 means foot flat.
	TorsoBase      = 180.0
	LeftArmBase    = 90.0
	RightArmBase   = -90.0
	LeftThighBase  = -90.0
	RightThighBase = 90.0
	LeftFootBase   = -90.0
	RightFootBase  = 90.0
)

// Bones is the full figure: two chains rooted at the same origin joint
// (index 0 torso chain, index 8 pelvis chain).
var Bones = []Bone{
	{Joint: Torso, Parent: -1, Length: TorsoLength, Base: TorsoBase, Proximal: PointRoot, Distal: PointNeck},
	{Joint: Neck, Parent: 0, Length: HeadLength, Proximal: PointNeck, Distal: PointHead},

	{Joint: LeftShoulder, Parent: 0, Length: UpperArmLength, Base: LeftArmBase,
		Offset: mathutil.Vec2{X: -ShoulderOffsetX, Y: -ShoulderOffsetY}, Proximal: PointLeftShoulder, Distal: PointLeftElbow},
	{Joint: LeftForearm, Parent: 2, Length: ForearmLength, Proximal: PointLeftElbow, Distal: PointLeftWrist},
	{Joint: LeftWrist, Parent: 3, Length: HandLength, Proximal: PointLeftWrist, Distal: PointLeftHand},

	{Joint: RightShoulder, Parent: 0, Length: UpperArmLength, Base: RightArmBase,
		Offset: mathutil.Vec2{X: ShoulderOffsetX, Y: -ShoulderOffsetY}, Proximal: PointRightShoulder, Distal: PointRightElbow},
	{Joint: RightForearm, Parent: 5, Length: ForearmLength, Proximal: PointRightElbow, Distal: PointRightWrist},
	{Joint: RightWrist, Parent: 6, Length: HandLength, Proximal: PointRightWrist, Distal: PointRightHand},

	{Joint: JointNone, Parent: -1, Length: PelvisLength, Proximal: PointRoot, Distal: PointPelvis},

	{Joint: LeftThigh, Parent: 8, Length: ThighLength, Base: LeftThighBase,
		Offset: mathutil.Vec2{X: HipOffsetX, Y: 0}, Proximal: PointLeftHip, Distal: PointLeftKnee},
	{Joint: LeftCalf, Parent: 9, Length: CalfLength, Proximal: PointLeftKnee, Distal: PointLeftAnkle},
	{Joint: LeftAnkle, Parent: 10, Length: FootLength, Base: LeftFootBase, Proximal: PointLeftAnkle, Distal: PointLeftBall},
	{Joint: LeftToes, Parent: 11, Length: ToeLength, Proximal: PointLeftBall, Distal: PointLeftToe},

	{Joint: RightThigh, Parent: 8, Length: ThighLength, Base: RightThighBase,
		Offset: mathutil.Vec2{X: -HipOffsetX, Y: 0}, Proximal: PointRightHip, Distal: PointRightKnee},
	{Joint: RightCalf, Parent: 13, Length: CalfLength, Proximal: PointRightKnee, Distal: PointRightAnkle},
	{Joint: RightAnkle, Parent: 14, Length: FootLength, Base: RightFootBase, Proximal: PointRightAnkle, Distal: PointRightBall},
	{Joint: RightToes, Parent: 15, Length: ToeLength, Proximal: PointRightBall, Distal: PointRightToe},
}

// Side selects the left or right limb chains for IK tethering.
type Side int

const (
	Left Side = iota
	Right
)

// Chain describes a two-bone limb for the inverse-kinematics solver.
type Chain struct {
	Root         Point   // chain-root joint position (hip or shoulder)
	Upper        Joint   // first rotation channel (thigh or shoulder)
	Lower        Joint   // second rotation channel (calf or forearm)
	L1, L2       float64 // segment lengths
	Base         float64 // per-side base angle of the first bone, degrees
	ThroughTorso bool    // true when the chain hangs off the torso bone
}

// LegChain returns the hip→knee→ankle chain for one side.
func LegChain(s Side) Chain {
	if s == Left {
		return Chain{Root: PointLeftHip, Upper: LeftThigh, Lower: LeftCalf,
			L1: ThighLength, L2: CalfLength, Base: LeftThighBase}
	}
	return Chain{Root: PointRightHip, Upper: RightThigh, Lower: RightCalf,
		L1: ThighLength, L2: CalfLength, Base: RightThighBase}
}

// ArmChain returns the shoulder→elbow→wrist chain for one side.
func ArmChain(s Side) Chain {
	if s == Left {
		return Chain{Root: PointLeftShoulder, Upper: LeftShoulder, Lower: LeftForearm,
			L1: UpperArmLength, L2: ForearmLength, Base: LeftArmBase, ThroughTorso: true}
	}
	return Chain{Root: PointRightShoulder, Upper: RightShoulder, Lower: RightForearm,
		L1: UpperArmLength, L2: ForearmLength, Base: RightArmBase, ThroughTorso: true}
}

// Package session owns one editing session: the frame sequence, its
// history, the live auto-recorder and the playback scheduler, behind the
// surface the rendering/controls/export collaborators call. A session has
// a single logical writer; all sequencing comes from the host event loop,
// so nothing here locks.
package session

import (
	"time"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/kinematics"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/playback"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/sequence"
)

// Session is the kinematics and animation engine behind one editing UI.
type Session struct {
	seq   *sequence.Sequence
	hist  *sequence.History
	rec   *sequence.AutoRecorder
	sched *playback.Scheduler

	recording bool
	inGesture bool
}

// New starts a session on a single default frame.
func New() *Session {
	return NewWith(pose.Default(), sequence.DefaultMaxFrames, sequence.DefaultThreshold)
}

// NewWith starts a session with an explicit initial pose, frame capacity
// and auto-record threshold.
func NewWith(initial pose.Pose, maxFrames int, threshold float64) *Session {
	return &Session{
		seq:   sequence.New(initial, maxFrames),
		hist:  &sequence.History{},
		rec:   sequence.NewAutoRecorder(initial, threshold),
		sched: playback.New(),
	}
}

// Current returns the pose under the frame cursor.
func (s *Session) Current() pose.Pose { return s.seq.Current() }

// Frames returns a copy of the frame list.
func (s *Session) Frames() []pose.Pose { return s.seq.Frames() }

func (s *Session) Index() int    { return s.seq.Index() }
func (s *Session) Len() int      { return s.seq.Len() }
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// ResolveJoints runs forward kinematics on the current frame.
func (s *Session) ResolveJoints() map[schema.Point]mathutil.Vec2 {
	return kinematics.ResolveJoints(s.seq.Current())
}

// BeginGesture marks the start of one user edit gesture (pointer-down on
// a control). It stops playback and takes the single history snapshot the
// whole gesture is entitled to; every ApplyEdit until EndGesture rides on
// that snapshot.
func (s *Session) BeginGesture() {
	if s.inGesture {
		return
	}
	s.inGesture = true
	s.sched.Pause()
	s.hist.Record(s.seq.Snapshot())
}

// EndGesture marks pointer-up.
func (s *Session) EndGesture() {
	s.inGesture = false
}

// ApplyEdit merges a partial update into the current frame and returns
// the resulting pose. Outside a gesture the call counts as a gesture of
// its own and snapshots first. While live recording is on, the edit runs
// through the auto-recorder, which may commit it as a new frame.
func (s *Session) ApplyEdit(u pose.Update) pose.Pose {
	if !s.inGesture {
		s.sched.Pause()
		s.hist.Record(s.seq.Snapshot())
	}
	candidate := s.seq.Current().Apply(u)
	if s.recording {
		s.rec.Observe(s.seq, s.hist, candidate)
	} else {
		s.seq.ReplaceCurrent(candidate)
	}
	return s.seq.Current()
}

// SetRecording toggles live auto-record mode.
func (s *Session) SetRecording(on bool) { s.recording = on }

// Recording reports whether live auto-record mode is on.
func (s *Session) Recording() bool { return s.recording }

// AddFrame appends a duplicate of the current frame. No-op at capacity.
func (s *Session) AddFrame() bool {
	return s.mutate(func() bool { return s.seq.Add() })
}

// InsertBetween inserts the halfway blend toward the next frame (wrapping
// to frame 0 from the last). No-op at capacity.
func (s *Session) InsertBetween() bool {
	return s.mutate(func() bool { return s.seq.InsertBetween() })
}

// DeleteFrame removes the current frame. No-op on a single-frame sequence.
func (s *Session) DeleteFrame() bool {
	return s.mutate(func() bool { return s.seq.Delete() })
}

// ReplaceCurrent overwrites the current frame with a loaded or pasted pose.
func (s *Session) ReplaceCurrent(p pose.Pose) {
	s.mutate(func() bool { s.seq.ReplaceCurrent(p); return true })
}

// mutate wraps a sequence mutation in the snapshot-first contract. The
// snapshot is only kept when the mutation actually happens.
func (s *Session) mutate(op func() bool) bool {
	s.sched.Pause()
	pre := s.seq.Snapshot()
	if !op() {
		return false
	}
	s.hist.Record(pre)
	return true
}

// SelectFrame moves the cursor. Never snapshots, never blocked for valid
// indices.
func (s *Session) SelectFrame(i int) bool { return s.seq.Select(i) }

// Undo restores the most recent past state. Returns false when the
// history is exhausted. Playback stops either way.
func (s *Session) Undo() bool {
	s.sched.Pause()
	snap, ok := s.hist.Undo(s.seq.Snapshot())
	if !ok {
		return false
	}
	s.seq.Restore(snap)
	return true
}

// Redo replays the state peeled off by the most recent undo. Returns
// false when there is no future branch. Playback stops either way.
func (s *Session) Redo() bool {
	s.sched.Pause()
	snap, ok := s.hist.Redo(s.seq.Snapshot())
	if !ok {
		return false
	}
	s.seq.Restore(snap)
	return true
}

// Play starts playback from the selected frame.
func (s *Session) Play(now time.Time) { s.sched.Play(now, s.seq) }

// Pause stops playback; the display reverts to the literal current frame.
func (s *Session) Pause() { s.sched.Pause() }

func (s *Session) Playing() bool       { return s.sched.Playing() }
func (s *Session) SetTweening(on bool) { s.sched.SetTweening(on) }
func (s *Session) SetFPS(fps float64)  { s.sched.SetFPS(fps) }
func (s *Session) FPS() float64        { return s.sched.FPS() }

// Tick advances playback and returns the pose to display.
func (s *Session) Tick(now time.Time) pose.Pose {
	return s.sched.Tick(now, s.seq)
}

// TetherAnkle pins one ankle to a world position, recomputing the thigh
// and calf angles with the two-bone solver while everything else stays
// put. The bend direction sticks to the knee's current side.
func (s *Session) TetherAnkle(side schema.Side, target mathutil.Vec2) pose.Pose {
	return s.tether(schema.LegChain(side), target)
}

// TetherWrist pins one wrist to a world position via the shoulder and
// forearm angles.
func (s *Session) TetherWrist(side schema.Side, target mathutil.Vec2) pose.Pose {
	return s.tether(schema.ArmChain(side), target)
}

func (s *Session) tether(ch schema.Chain, target mathutil.Vec2) pose.Pose {
	cur := s.seq.Current()
	joints := kinematics.ResolveJoints(cur)
	rootPos := joints[ch.Root]

	// A corrective c on the chain's first bone tilts that segment by c on
	// top of its primary angle without touching the second segment's
	// global orientation. Folding c into the ancestor sum lets the plain
	// solver run unchanged: its first output is the primary angle
	// directly, and the second output is the local lower angle minus c.
	c := cur.Corrective(ch.Upper)
	anc := kinematics.ChainAncestorRotation(cur, ch) + c

	bend := kinematics.BendSign(cur.Angle(ch.Lower) - c)
	a1, a2 := kinematics.SolveTwoBone(anc, rootPos, target, ch.L1, ch.L2, bend,
		cur.Angle(ch.Upper), cur.Angle(ch.Lower)-c)

	return s.ApplyEdit(pose.Update{Angles: map[schema.Joint]float64{
		ch.Upper: a1,
		ch.Lower: a2 + c,
	}})
}

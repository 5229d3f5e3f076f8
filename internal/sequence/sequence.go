// Package sequence holds the animation state machines: the bounded frame
// list with its cursor, the undo/redo history and the deviation-triggered
// auto-recorder. Invalid operations (capacity hit, deleting the last
// frame, out-of-range selects) are silently rejected rather than erroring:
// the surrounding UI disables those controls, but the core stays defensive
// when called anyway.
package sequence

import "github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"

// DefaultMaxFrames bounds a sequence when the caller does not choose.
const DefaultMaxFrames = 24

// Sequence is an ordered, non-empty, bounded list of poses plus the
// current-frame cursor. The cursor is valid after every operation.
type Sequence struct {
	frames []pose.Pose
	index  int
	max    int
}

// New creates a sequence holding the single initial frame.
func New(initial pose.Pose, max int) *Sequence {
	if max < 1 {
		max = DefaultMaxFrames
	}
	return &Sequence{frames: []pose.Pose{initial}, max: max}
}

func (s *Sequence) Len() int   { return len(s.frames) }
func (s *Sequence) Index() int { return s.index }
func (s *Sequence) Max() int   { return s.max }

// Full reports whether the sequence is at capacity.
func (s *Sequence) Full() bool { return len(s.frames) >= s.max }

// Current returns the frame under the cursor.
func (s *Sequence) Current() pose.Pose { return s.frames[s.index] }

// Frame returns frame i, or the current frame if i is out of range.
func (s *Sequence) Frame(i int) pose.Pose {
	if i < 0 || i >= len(s.frames) {
		return s.frames[s.index]
	}
	return s.frames[i]
}

// Frames returns a copy of the frame list.
func (s *Sequence) Frames() []pose.Pose {
	out := make([]pose.Pose, len(s.frames))
	copy(out, s.frames)
	return out
}

// Add appends a duplicate of the current frame and moves the cursor to
// it. Rejected at capacity.
func (s *Sequence) Add() bool {
	if s.Full() {
		return false
	}
	s.frames = append(s.frames, s.frames[s.index])
	s.index = len(s.frames) - 1
	return true
}

// InsertBetween inserts the halfway blend of the current frame and its
// successor right after the current frame, then moves the cursor onto the
// new frame. The sequence is conceptually a loop, so the successor of the
// last frame is frame 0. Rejected at capacity.
func (s *Sequence) InsertBetween() bool {
	if s.Full() {
		return false
	}
	next := (s.index + 1) % len(s.frames)
	mid := pose.Interpolate(s.frames[s.index], s.frames[next], 0.5)
	s.frames = append(s.frames, pose.Pose{})
	copy(s.frames[s.index+2:], s.frames[s.index+1:])
	s.frames[s.index+1] = mid
	s.index++
	return true
}

// Delete removes the frame under the cursor. Rejected when only one frame
// remains. Deleting the last frame moves the cursor back one; otherwise
// the cursor stays, now pointing at the frame that shifted into place.
func (s *Sequence) Delete() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = append(s.frames[:s.index], s.frames[s.index+1:]...)
	if s.index >= len(s.frames) {
		s.index = len(s.frames) - 1
	}
	return true
}

// Select moves the cursor. Out-of-range indices are rejected.
func (s *Sequence) Select(i int) bool {
	if i < 0 || i >= len(s.frames) {
		return false
	}
	s.index = i
	return true
}

// ReplaceCurrent overwrites the frame under the cursor, leaving length and
// cursor untouched.
func (s *Sequence) ReplaceCurrent(p pose.Pose) {
	s.frames[s.index] = p
}

// Snapshot is an immutable copy of the sequence state, suitable for the
// history stacks.
type Snapshot struct {
	Frames []pose.Pose
	Index  int
}

// Snapshot captures the current frames and cursor.
func (s *Sequence) Snapshot() Snapshot {
	return Snapshot{Frames: s.Frames(), Index: s.index}
}

// Restore replaces the sequence state with a snapshot.
func (s *Sequence) Restore(snap Snapshot) {
	s.frames = make([]pose.Pose, len(snap.Frames))
	copy(s.frames, snap.Frames)
	s.index = snap.Index
	if s.index >= len(s.frames) {
		s.index = len(s.frames) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}
